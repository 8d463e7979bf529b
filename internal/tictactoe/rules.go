package tictactoe

import (
	"slices"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// WinCombos lists every line of three cells. The order is rows, columns,
// then diagonals.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// HasBingo reports whether indices contain all three cells of any line.
func HasBingo(indices []int) bool {
	for _, combo := range WinCombos {
		if slices.Contains(indices, combo[0]) &&
			slices.Contains(indices, combo[1]) &&
			slices.Contains(indices, combo[2]) {
			return true
		}
	}

	return false
}

// AvailableCells returns the indices of empty cells in ascending order.
func AvailableCells(board entity.Board) []int {
	return cellsWith(board, entity.Empty)
}

// UpdateGameStatus derives the status from the board alone. A line of First
// marks is checked before a line of Second marks.
func UpdateGameStatus(board entity.Board, firstPlayer entity.Player) entity.GameStatus {
	if HasBingo(cellsWith(board, entity.First)) {
		return entity.StatusSettled(firstPlayer)
	}

	if HasBingo(cellsWith(board, entity.Second)) {
		return entity.StatusSettled(firstPlayer.Opponent())
	}

	if len(AvailableCells(board)) == 0 {
		return entity.StatusDraw()
	}

	return entity.StatusNotFinished()
}

func cellsWith(board entity.Board, mark entity.Mark) []int {
	cells := make([]int, 0, len(board))
	for i, cell := range board {
		if cell == mark {
			cells = append(cells, i)
		}
	}

	return cells
}
