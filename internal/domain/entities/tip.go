package entities

import "fmt"

// TipKind identifies which variant a Tip holds.
type TipKind int

const (
	TipNone       TipKind = iota // no hint
	TipSingle                    // the same hint for both orientations
	TipRectoVerso                // one hint per orientation
)

// Tip is the hint shown after a wrong attempt.
type Tip struct {
	kind  TipKind
	front string
	back  string
}

// NoTip returns an empty hint.
func NoTip() Tip {
	return Tip{kind: TipNone}
}

// SingleTip returns a hint that does not depend on the card orientation.
func SingleTip(text string) Tip {
	return Tip{kind: TipSingle, front: text}
}

// RectoVersoTip returns a hint with one text per side.
// front is shown while the recto is the prompt, back once the card is flipped.
func RectoVersoTip(front, back string) Tip {
	return Tip{kind: TipRectoVerso, front: front, back: back}
}

func (t Tip) Kind() TipKind {
	return t.kind
}

// Texts returns the hint texts. back is empty unless the tip is TipRectoVerso.
func (t Tip) Texts() (front, back string) {
	return t.front, t.back
}

func (t *Tip) flip() {
	if t.kind == TipRectoVerso {
		t.front, t.back = t.back, t.front
	}
}

// String renders the hint for the current orientation.
func (t Tip) String() string {
	switch t.kind {
	case TipSingle, TipRectoVerso:
		return fmt.Sprintf("Tip : %s.", t.front)
	default:
		return "Wrong answer."
	}
}
