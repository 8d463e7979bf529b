package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

// Console is the terminal front end. It draws the model and turns user input
// into messages; it never changes the model itself.
type Console struct {
	logger *slog.Logger

	in     *bufio.Reader
	out    io.Writer
	banner lipgloss.Style

	backOff backoff.BackOff
	sleep   func(time.Duration)
}

type Option func(*Console)

// WithBackOff sets the pacing used between failed reads.
func WithBackOff(b backoff.BackOff) Option {
	return func(that *Console) {
		that.backOff = b
	}
}

func New(logger *slog.Logger, in io.Reader, out io.Writer, opts ...Option) *Console {
	retry := backoff.NewExponentialBackOff()
	retry.MaxElapsedTime = 0

	that := &Console{
		logger:  logger.With("component", "console"),
		in:      bufio.NewReader(in),
		out:     out,
		banner:  newBannerStyle(lipgloss.NewRenderer(out)),
		backOff: retry,
		sleep:   time.Sleep,
	}

	for _, opt := range opts {
		opt(that)
	}

	return that
}

// View renders model and, while the game is running, asks the user for the
// next input. A finished game is rendered with its result and yields
// NoMessage.
func (that *Console) View(model entity.GameModel) entity.Message {
	switch model.Status.Kind {
	case entity.Draw, entity.Settled:
		that.printBoard(model.Board)
		that.println(that.banner.Render(ResultText(model.Status)))
		return entity.NoMessage{}
	case entity.NotFinished:
	}

	if !model.HasFirstPlayer() {
		return entity.PlayerOrderChosen{UserFirst: that.AskPlayFirst()}
	}

	that.printBoard(model.Board)

	return entity.CellClicked{Index: that.AskMove(tictactoe.AvailableCells(model.Board))}
}

func (that *Console) printBoard(board entity.Board) {
	that.printf("%s", RenderBoard(board))
}

func (that *Console) println(a ...any) {
	_, _ = fmt.Fprintln(that.out, a...)
}

func (that *Console) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(that.out, format, a...)
}

func (that *Console) logInputError(log *slog.Logger, err error) {
	if errors.Is(err, apperror.ErrReadInput) {
		log.Warn("failed to read input", "error", err)
		return
	}

	log.Debug("invalid input", "error", err)
}
