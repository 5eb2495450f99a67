package entity

// OutcomeStatus - classification of a board.
type OutcomeStatus uint8

const (
	Ongoing OutcomeStatus = iota
	Draw
	Won
)

func (that OutcomeStatus) String() string {
	switch that {
	case Ongoing:
		return "ongoing"
	case Draw:
		return "draw"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

// Outcome - result of classifying a board. Winner and Line are set only when Status is Won.
type Outcome struct {
	Status OutcomeStatus
	Winner Player
	Line   [3]int
}

func (that Outcome) IsTerminal() bool {
	return that.Status != Ongoing
}
