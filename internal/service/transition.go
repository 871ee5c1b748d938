package service

// Mode is the source the asker currently draws questions from.
type Mode int

const (
	ModeNew    Mode = iota // traversing the deck
	ModeFailed             // traversing the retry queue
)

func (m Mode) String() string {
	if m == ModeFailed {
		return "failed"
	}
	return "new"
}

// Step is the side effect the asker performs after a transition.
type Step int

const (
	StepNextCard      Step = iota // advance the deck cursor
	StepWrapCycle                 // count a cycle, reshuffle (and re-flip) the deck, then advance it
	StepOpenRetryPass             // advance the retry queue, which opens a new pass
	StepNextRetry                 // advance the retry queue
)

func (s Step) String() string {
	switch s {
	case StepWrapCycle:
		return "wrap_cycle"
	case StepOpenRetryPass:
		return "open_retry_pass"
	case StepNextRetry:
		return "next_retry"
	default:
		return "next_card"
	}
}

// Transition computes the next mode and the step to perform once a question is graded.
//
//	New,    last card, retry empty     -> New,    StepWrapCycle
//	New,    last card, retry pending   -> Failed, StepOpenRetryPass
//	New,    otherwise                  -> New,    StepNextCard
//	Failed, retry empty                -> evaluated again as New
//	Failed, otherwise                  -> Failed, StepNextRetry
//
// The deck cursor stays on the last card during a retry pass, so leaving Failed
// always lands on the New wrap rule and no deck question is skipped.
func Transition(mode Mode, atLastCard, retryEmpty bool) (Mode, Step) {
	switch mode {
	case ModeFailed:
		if retryEmpty {
			return Transition(ModeNew, atLastCard, retryEmpty)
		}
		return ModeFailed, StepNextRetry
	default:
		if !atLastCard {
			return ModeNew, StepNextCard
		}
		if retryEmpty {
			return ModeNew, StepWrapCycle
		}
		return ModeFailed, StepOpenRetryPass
	}
}
