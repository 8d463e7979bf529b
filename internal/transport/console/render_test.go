package console

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

func TestRenderBoard(t *testing.T) {
	t.Run("Empty board", func(t *testing.T) {
		expected := "0|1|2   | | \n" +
			"3|4|5   | | \n" +
			"6|7|8   | | \n"

		assert.Equal(t, expected, RenderBoard(entity.Board{}))
	})

	t.Run("Marks", func(t *testing.T) {
		board := entity.Board{
			entity.First, entity.Empty, entity.Second,
			entity.Empty, entity.First, entity.Empty,
			entity.Second, entity.Empty, entity.Empty,
		}

		expected := "0|1|2  o| |x\n" +
			"3|4|5   |o| \n" +
			"6|7|8  x| | \n"

		assert.Equal(t, expected, RenderBoard(board))
	})
}

func TestResultText(t *testing.T) {
	assert.Equal(t, "Draw!", ResultText(entity.StatusDraw()))
	assert.Equal(t, "You win, nice!", ResultText(entity.StatusSettled(entity.User)))
	assert.Equal(t, "You lose, too bad! Try again!", ResultText(entity.StatusSettled(entity.Computer)))
	assert.Empty(t, ResultText(entity.StatusNotFinished()))
}
