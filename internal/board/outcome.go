package board

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWin        Status = "win"
	StatusDraw       Status = "draw"
)

// Outcome is derived from a board on demand and never stored.
type Outcome struct {
	Status Status
	Winner Player
}

func (that Outcome) IsTerminal() bool {
	return that.Status != StatusInProgress
}

func (that *Board) Outcome() Outcome {
	switch {
	case that.HasLine(MarkX):
		return Outcome{Status: StatusWin, Winner: PlayerX}
	case that.HasLine(MarkO):
		return Outcome{Status: StatusWin, Winner: PlayerO}
	case that.IsFull():
		return Outcome{Status: StatusDraw}
	default:
		return Outcome{Status: StatusInProgress}
	}
}
