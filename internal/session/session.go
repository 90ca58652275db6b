package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/xandos/internal/apperror"
	"github.com/rocketscienceinc/xandos/internal/board"
	"github.com/rocketscienceinc/xandos/internal/viewmodel"
)

const usage = "enter a move as <row> <column>, or q to quit"

type screen interface {
	Render(view *viewmodel.MainView) error
	Notice(text string) error
}

// Session is one game: a board, the views following it and the screen they are drawn on.
type Session struct {
	id     uuid.UUID
	logger *slog.Logger
	screen screen

	board *board.Board
	view  *viewmodel.MainView
}

func New(logger *slog.Logger, screen screen, palette viewmodel.Palette) (*Session, error) {
	id := uuid.New()

	b := board.New()

	view, err := viewmodel.NewMainView(b, palette)
	if err != nil {
		return nil, fmt.Errorf("failed to create main view: %w", err)
	}

	session := &Session{
		id:     id,
		logger: logger.With("component", "session", "sessionID", id.String()),
		screen: screen,
		board:  b,
		view:   view,
	}

	for row := 0; row < board.Size; row++ {
		for column := 0; column < board.Size; column++ {
			if err = b.Subscribe(row, column, session.watch(row, column)); err != nil {
				return nil, fmt.Errorf("failed to watch square: %w", err)
			}
		}
	}

	return session, nil
}

func (that *Session) ID() uuid.UUID {
	return that.id
}

func (that *Session) Board() *board.Board {
	return that.board
}

// Play draws the board and applies moves read from in, one per line, until
// the game ends, the input runs out or ctx is cancelled.
func (that *Session) Play(ctx context.Context, in io.Reader) error {
	log := that.logger.With("method", "Play")

	if err := that.screen.Render(that.view); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				scanErr <- ctx.Err()
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			log.Info("session cancelled")
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				if err := <-scanErr; err != nil {
					return fmt.Errorf("failed to read moves: %w", err)
				}

				log.Info("input closed")
				return nil
			}

			done, err := that.handleLine(line)
			if err != nil {
				return err
			}

			if done {
				return nil
			}
		}
	}
}

// handleLine applies one line of input and reports whether the session is over.
func (that *Session) handleLine(line string) (bool, error) {
	log := that.logger.With("method", "handleLine")

	line = strings.TrimSpace(line)
	switch strings.ToLower(line) {
	case "":
		return false, nil
	case "q", "quit":
		log.Info("player quit")
		return true, nil
	}

	row, column, err := parseMove(line)
	if err != nil {
		log.Debug("unreadable move", "input", line)
		return false, that.notice(usage)
	}

	square, err := that.view.Square(row, column)
	if err != nil {
		log.Warn("move outside the board", "row", row, "column", column)
		return false, that.notice(err.Error())
	}

	command := square.MarkCommand()
	if !command.CanExecute() {
		return false, that.notice(fmt.Sprintf("square (%d, %d) is already taken", row, column))
	}

	if err = command.Execute(); err != nil {
		if errors.Is(err, apperror.ErrSquareOccupied) || errors.Is(err, apperror.ErrInvalidCoordinates) {
			return false, that.notice(err.Error())
		}

		return false, fmt.Errorf("failed to make move: %w", err)
	}

	if err = that.screen.Render(that.view); err != nil {
		return false, fmt.Errorf("failed to render board: %w", err)
	}

	if that.board.IsGameEnded() {
		log.Info("game ended", "status", that.board.Status().String(), "winner", that.board.Winner().String())
		return true, nil
	}

	return false, nil
}

func (that *Session) notice(text string) error {
	if err := that.screen.Notice(text); err != nil {
		return fmt.Errorf("failed to show notice: %w", err)
	}

	return nil
}

// watch returns an observer logging every change of one square.
func (that *Session) watch(row, column int) board.Observer {
	log := that.logger.With("method", "watch", "row", row, "column", column)

	return board.ObserverFunc(func(mark board.Mark, inWinningLine bool) {
		if inWinningLine {
			log.Info("square in winning line", "mark", mark.String())
			return
		}

		log.Debug("square marked", "mark", mark.String())
	})
}

func parseMove(line string) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("expected 2 fields, got %d", len(fields))
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("bad row: %w", err)
	}

	column, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("bad column: %w", err)
	}

	return row, column, nil
}
