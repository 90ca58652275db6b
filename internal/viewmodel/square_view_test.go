package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/xandos/internal/board"
)

func TestSquareView(t *testing.T) {
	t.Run("Square should initially be blank and white", func(t *testing.T) {
		sut, err := NewSquareView(newFakeBoard(), 0, 0, DefaultPalette())
		require.NoError(t, err)

		assert.Empty(t, sut.Glyph())
		assert.False(t, sut.Highlighted())
		assert.Equal(t, DefaultBackground, sut.Background())
	})

	t.Run("Marking the square means it is not blank", func(t *testing.T) {
		sut, err := NewSquareView(newFakeBoard(), 0, 0, DefaultPalette())
		require.NoError(t, err)

		require.NoError(t, sut.MarkCommand().Execute())

		assert.Equal(t, "X", sut.Glyph())
		assert.Equal(t, DefaultBackground, sut.Background())
	})

	t.Run("A square in the winning line should be green", func(t *testing.T) {
		// Given: a board that reports every move as winning
		fake := newFakeBoard()
		sut, err := NewSquareView(fake, 0, 0, DefaultPalette())
		require.NoError(t, err)
		fake.gameWon = true

		// When: the square is marked
		require.NoError(t, sut.MarkCommand().Execute())

		// Then: the square is highlighted
		assert.True(t, sut.Highlighted())
		assert.Equal(t, DefaultHighlight, sut.Background())
	})

	t.Run("Highlight survives later notifications", func(t *testing.T) {
		sut, err := NewSquareView(newFakeBoard(), 1, 1, Palette{Background: "#000000", Highlight: "#FF0000"})
		require.NoError(t, err)

		sut.SquareChanged(board.Naught, true)
		sut.SquareChanged(board.Naught, false)

		assert.Equal(t, "O", sut.Glyph())
		assert.Equal(t, "#FF0000", sut.Background())
	})

	t.Run("Subscription failures are returned", func(t *testing.T) {
		b := &mockBoard{}
		b.On("Subscribe", 0, 2, mock.Anything).Return(errBoardBroken).Once()

		_, err := NewSquareView(b, 0, 2, DefaultPalette())

		require.ErrorIs(t, err, errBoardBroken)
		b.AssertExpectations(t)
	})
}

func TestGlyph(t *testing.T) {
	assert.Equal(t, "", Glyph(board.Blank))
	assert.Equal(t, "X", Glyph(board.Cross))
	assert.Equal(t, "O", Glyph(board.Naught))
}
