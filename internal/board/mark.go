package board

// Mark is the value occupying a square.
type Mark int

const (
	Blank Mark = iota
	Cross
	Naught
)

func (that Mark) String() string {
	switch that {
	case Blank:
		return "Blank"
	case Cross:
		return "Cross"
	case Naught:
		return "Naught"
	default:
		return "Unknown"
	}
}

// opponent returns the mark that moves after this one.
func (that Mark) opponent() Mark {
	if that == Cross {
		return Naught
	}
	return Cross
}

// Status is the state of the game on a board.
type Status int

const (
	InProgress Status = iota
	Won
	Drawn
)

func (that Status) String() string {
	switch that {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Drawn:
		return "drawn"
	default:
		return "unknown"
	}
}
