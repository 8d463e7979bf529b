package usecase

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type viewDep interface {
	View(model entity.GameModel) entity.Message
}

type controllerDep interface {
	Update(model entity.GameModel, msg entity.Message) entity.GameModel
}

// GameLoop alternates View and Update until the game is finished.
type GameLoop struct {
	logger     *slog.Logger
	view       viewDep
	controller controllerDep
}

func NewGameLoop(logger *slog.Logger, view viewDep, controller controllerDep) *GameLoop {
	return &GameLoop{
		logger: logger.With("component", "game_loop"),

		view:       view,
		controller: controller,
	}
}

// Run plays one game from a fresh model and returns the final model. The
// finished game is rendered once more before returning.
func (that *GameLoop) Run() entity.GameModel {
	log := that.logger.With("method", "Run", "game_id", uuid.NewString())

	model := entity.NewGame()
	log.Info("game started")

	for !model.Status.IsFinished() {
		msg := that.view.View(model)
		model = that.controller.Update(model, msg)

		log.Debug("game updated",
			"message", fmt.Sprintf("%+v", msg),
			"first_player", model.FirstPlayer.String(),
			"status", model.Status.String(),
		)
	}

	that.view.View(model)
	log.Info("game finished", "status", model.Status.String())

	return model
}
