package entities

// FlipSide selects which side of the cards is asked when a session starts.
type FlipSide string

const (
	SideRecto  FlipSide = "recto"  // ask the recto of every card
	SideVerso  FlipSide = "verso"  // ask the verso of every card
	SideRandom FlipSide = "random" // ask the verso of a random quarter of the deck
)

// FlipMode is the initial card orientation of a session.
type FlipMode struct {
	Side     FlipSide
	allCases bool
}

func FlipRecto() FlipMode {
	return FlipMode{Side: SideRecto}
}

func FlipVerso() FlipMode {
	return FlipMode{Side: SideVerso}
}

// FlipRandom flips a random quarter of the deck. With allCases the whole deck
// is also flipped every time a cycle ends, so both sides get asked.
func FlipRandom(allCases bool) FlipMode {
	return FlipMode{Side: SideRandom, allCases: allCases}
}

// AllCases reports whether the deck is re-flipped at every cycle wrap.
func (m FlipMode) AllCases() bool {
	return m.Side == SideRandom && m.allCases
}

func (m FlipMode) String() string {
	if m.AllCases() {
		return string(m.Side) + "+all_cases"
	}
	if m.Side == "" {
		return string(SideRecto)
	}
	return string(m.Side)
}
