package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	drawText = "Draw!"
	winText  = "You win, nice!"
	loseText = "You lose, too bad! Try again!"
)

// RenderBoard draws the index legend next to the marks, one row per line:
//
//	0|1|2  o| |x
func RenderBoard(board entity.Board) string {
	var sb strings.Builder

	for row := range 3 {
		i := row * 3
		fmt.Fprintf(&sb, "%d|%d|%d  %c|%c|%c\n",
			i, i+1, i+2,
			board[i].Symbol(), board[i+1].Symbol(), board[i+2].Symbol(),
		)
	}

	return sb.String()
}

// ResultText is the end-of-game message seen by the user.
func ResultText(status entity.GameStatus) string {
	switch status.Kind {
	case entity.Draw:
		return drawText
	case entity.Settled:
		if status.Winner == entity.User {
			return winText
		}
		return loseText
	case entity.NotFinished:
		return ""
	}

	return ""
}

func newBannerStyle(renderer *lipgloss.Renderer) lipgloss.Style {
	return renderer.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color("63")).
		Bold(true).
		Padding(0, 2)
}
