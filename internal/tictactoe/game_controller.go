package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type botDep interface {
	ChooseCell(available []int) int
}

// GameController holds the game rules. Update never performs I/O; the only
// outside input is the cell picked by the bot.
type GameController struct {
	bot botDep
}

func NewGameController(bot botDep) *GameController {
	return &GameController{
		bot: bot,
	}
}

// Update returns the model that follows model after msg.
// Finished games are never changed.
func (that *GameController) Update(model entity.GameModel, msg entity.Message) entity.GameModel {
	if model.Status.IsFinished() {
		return model
	}

	switch msg := msg.(type) {
	case entity.CellClicked:
		return that.onCellClicked(model, msg.Index)
	case entity.PlayerOrderChosen:
		return that.onPlayerOrderChosen(model, msg.UserFirst)
	case entity.NoMessage:
		return model
	}

	return model
}

func (that *GameController) onPlayerOrderChosen(model entity.GameModel, userFirst bool) entity.GameModel {
	// the order is fixed for the rest of the game once chosen
	if model.HasFirstPlayer() {
		return model
	}

	if userFirst {
		return entity.NewGameModel(entity.User, model.Board, model.Status)
	}

	return that.computerMove(entity.NewGameModel(entity.Computer, model.Board, model.Status))
}

func (that *GameController) onCellClicked(model entity.GameModel, cell int) entity.GameModel {
	if !model.HasFirstPlayer() {
		return model
	}

	afterUser := PlaceMark(model, cell, entity.User)
	if afterUser == model || afterUser.Status.IsFinished() {
		return afterUser
	}

	return that.computerMove(afterUser)
}

func (that *GameController) computerMove(model entity.GameModel) entity.GameModel {
	available := AvailableCells(model.Board)
	if len(available) == 0 {
		return entity.NewGameModel(model.FirstPlayer, model.Board, UpdateGameStatus(model.Board, model.FirstPlayer))
	}

	return PlaceMark(model, that.bot.ChooseCell(available), entity.Computer)
}

// PlaceMark writes the mark of player at cell and recomputes the status.
// A cell outside the board or already taken leaves the model unchanged.
func PlaceMark(model entity.GameModel, cell int, player entity.Player) entity.GameModel {
	if cell < 0 || cell >= entity.BoardSize || model.Board[cell] != entity.Empty {
		return model
	}

	board := model.Board.Place(cell, model.MarkOf(player))

	return entity.NewGameModel(model.FirstPlayer, board, UpdateGameStatus(board, model.FirstPlayer))
}
