package board

// Observer is notified whenever a square changes and again when the square
// becomes part of the winning line.
type Observer interface {
	SquareChanged(mark Mark, inWinningLine bool)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(mark Mark, inWinningLine bool)

func (f ObserverFunc) SquareChanged(mark Mark, inWinningLine bool) {
	f(mark, inWinningLine)
}

type square struct {
	mark      Mark
	observers []Observer
}

func (that *square) set(mark Mark) {
	that.mark = mark
	that.notify(false)
}

// inWinningLine re-delivers the current mark flagged as part of the winning line.
func (that *square) inWinningLine() {
	that.notify(true)
}

func (that *square) notify(inWinningLine bool) {
	for _, observer := range that.observers {
		observer.SquareChanged(that.mark, inWinningLine)
	}
}
