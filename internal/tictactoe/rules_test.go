package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	e = entity.Empty
	o = entity.First
	x = entity.Second
)

func TestHasBingo(t *testing.T) {
	t.Run("Every winning line", func(t *testing.T) {
		for _, combo := range WinCombos {
			// Given: exactly the cells of one line
			indices := []int{combo[0], combo[1], combo[2]}

			// Then: it is a bingo
			assert.True(t, HasBingo(indices), "line %v", combo)
		}
	})

	t.Run("Line hidden among other cells", func(t *testing.T) {
		assert.True(t, HasBingo([]int{1, 6, 4, 8, 2}))
	})

	t.Run("Empty set", func(t *testing.T) {
		assert.False(t, HasBingo(nil))
		assert.False(t, HasBingo([]int{}))
	})

	t.Run("Two cells of a line", func(t *testing.T) {
		for _, combo := range WinCombos {
			assert.False(t, HasBingo([]int{combo[0], combo[1]}), "line %v", combo)
			assert.False(t, HasBingo([]int{combo[0], combo[2]}), "line %v", combo)
			assert.False(t, HasBingo([]int{combo[1], combo[2]}), "line %v", combo)
		}
	})

	t.Run("No line", func(t *testing.T) {
		assert.False(t, HasBingo([]int{0, 1, 5, 6, 8}))
	})
}

func TestAvailableCells(t *testing.T) {
	t.Run("Empty board", func(t *testing.T) {
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, AvailableCells(entity.Board{}))
	})

	t.Run("Partially filled board", func(t *testing.T) {
		board := entity.Board{
			o, e, x,
			e, o, e,
			x, e, e,
		}

		assert.Equal(t, []int{1, 3, 5, 7, 8}, AvailableCells(board))
	})

	t.Run("Full board", func(t *testing.T) {
		board := entity.Board{
			o, o, x,
			x, x, o,
			o, x, o,
		}

		assert.Empty(t, AvailableCells(board))
	})
}

func TestUpdateGameStatus(t *testing.T) {
	t.Run("Line of First marks settles for the first player", func(t *testing.T) {
		// Given: the first column filled with First marks
		board := entity.Board{
			o, x, e,
			o, x, e,
			o, e, e,
		}

		// Then: the first player wins whoever it is
		assert.Equal(t, entity.StatusSettled(entity.User), UpdateGameStatus(board, entity.User))
		assert.Equal(t, entity.StatusSettled(entity.Computer), UpdateGameStatus(board, entity.Computer))
	})

	t.Run("Line of Second marks settles for the other player", func(t *testing.T) {
		// Given: a diagonal of Second marks
		board := entity.Board{
			o, o, x,
			e, x, e,
			x, o, o,
		}

		// Then: the player who moved second wins
		assert.Equal(t, entity.StatusSettled(entity.Computer), UpdateGameStatus(board, entity.User))
		assert.Equal(t, entity.StatusSettled(entity.User), UpdateGameStatus(board, entity.Computer))
	})

	t.Run("Full board without a line is a draw", func(t *testing.T) {
		// Given: First at {0,1,5,6,8}, Second at {2,3,4,7}
		board := entity.Board{
			o, o, x,
			x, x, o,
			o, x, o,
		}

		// Then: the game is a draw
		assert.Equal(t, entity.StatusDraw(), UpdateGameStatus(board, entity.User))
	})

	t.Run("Empty cell and no line is not finished", func(t *testing.T) {
		board := entity.Board{
			o, x, o,
			e, x, e,
			e, o, e,
		}

		assert.Equal(t, entity.StatusNotFinished(), UpdateGameStatus(board, entity.User))
		assert.Equal(t, entity.StatusNotFinished(), UpdateGameStatus(entity.Board{}, entity.Computer))
	})

	t.Run("Line on a full board wins over draw", func(t *testing.T) {
		board := entity.Board{
			o, o, o,
			x, x, o,
			o, x, x,
		}

		assert.Equal(t, entity.StatusSettled(entity.User), UpdateGameStatus(board, entity.User))
	})

	t.Run("First mark line is checked before Second mark line", func(t *testing.T) {
		// Given: an unreachable board with a line of each mark
		board := entity.Board{
			o, o, o,
			x, x, x,
			e, e, e,
		}

		// Then: the First mark owner is reported as the winner
		assert.Equal(t, entity.StatusSettled(entity.Computer), UpdateGameStatus(board, entity.Computer))
	})
}
