package application

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/cenkalti/backoff/v4"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-cli/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-cli/internal/usecase"
)

var ErrInvalidRetryInterval = errors.New("input retry interval must be positive")

// RunApp - plays one game against the computer on in/out.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	if conf.Input.RetryMaxInterval <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidRetryInterval, conf.Input.RetryMaxInterval)
	}

	bot := service.NewBotService(conf.Bot.Seed)
	controller := tictactoe.NewGameController(bot)
	view := console.New(logger, in, out, console.WithBackOff(newReadBackOff(conf.Input)))

	result := usecase.NewGameLoop(logger, view, controller).Run()
	log.Debug("application finished", "status", result.Status.String())

	return nil
}

func newReadBackOff(conf config.Input) backoff.BackOff {
	retry := backoff.NewExponentialBackOff()
	retry.MaxElapsedTime = 0
	retry.MaxInterval = conf.RetryMaxInterval
	if retry.InitialInterval > retry.MaxInterval {
		retry.InitialInterval = retry.MaxInterval
	}
	retry.Reset()

	return retry
}
