package viewmodel

import (
	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/xandos/internal/board"
)

// fakeBoard always places a cross and reports the configured winning flag.
type fakeBoard struct {
	marks     [board.Size][board.Size]board.Mark
	observers [board.Size][board.Size][]board.Observer

	gameWon bool
	status  board.Status
	winner  board.Mark
	next    board.Mark
}

func newFakeBoard() *fakeBoard {
	return &fakeBoard{next: board.Cross}
}

func (that *fakeBoard) Get(row, column int) (board.Mark, error) {
	return that.marks[row][column], nil
}

func (that *fakeBoard) Mark(row, column int) error {
	that.marks[row][column] = board.Cross
	for _, observer := range that.observers[row][column] {
		observer.SquareChanged(board.Cross, that.gameWon)
	}
	return nil
}

func (that *fakeBoard) Subscribe(row, column int, observer board.Observer) error {
	that.observers[row][column] = append(that.observers[row][column], observer)
	return nil
}

func (that *fakeBoard) Status() board.Status { return that.status }
func (that *fakeBoard) Winner() board.Mark   { return that.winner }
func (that *fakeBoard) NextMove() board.Mark { return that.next }

type mockBoard struct {
	mock.Mock
}

func (m *mockBoard) Get(row, column int) (board.Mark, error) {
	args := m.Called(row, column)
	return args.Get(0).(board.Mark), args.Error(1)
}

func (m *mockBoard) Mark(row, column int) error {
	args := m.Called(row, column)
	return args.Error(0)
}

func (m *mockBoard) Subscribe(row, column int, observer board.Observer) error {
	args := m.Called(row, column, observer)
	return args.Error(0)
}

func (m *mockBoard) Status() board.Status {
	args := m.Called()
	return args.Get(0).(board.Status)
}

func (m *mockBoard) Winner() board.Mark {
	args := m.Called()
	return args.Get(0).(board.Mark)
}

func (m *mockBoard) NextMove() board.Mark {
	args := m.Called()
	return args.Get(0).(board.Mark)
}
