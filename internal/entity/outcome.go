package entity

// Outcome - the terminal state of a board, if any.
type Outcome uint8

const (
	NotTerminal Outcome = iota
	CircleWins
	CrossWins
	Draw
)

func (that Outcome) IsTerminal() bool {
	return that != NotTerminal
}

// Winner - returns the winning side, false for a draw or an unfinished game.
func (that Outcome) Winner() (Side, bool) {
	switch that {
	case CircleWins:
		return Circle, true
	case CrossWins:
		return Cross, true
	default:
		return 0, false
	}
}

func (that Outcome) String() string {
	switch that {
	case CircleWins:
		return "circle wins"
	case CrossWins:
		return "cross wins"
	case Draw:
		return "draw"
	default:
		return "ongoing"
	}
}

func winOutcome(side Side) Outcome {
	if side == Circle {
		return CircleWins
	}
	return CrossWins
}
