package console

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/cenkalti/backoff/v4"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

const (
	promptPlayFirst = "Do you want to play first? [y/n]: "
	promptMove      = "What's your move? [0-8]: "

	retryPlayFirst = "Please input 'y' or 'n' :"
	retryMove      = "Please input [0-8] :"
)

// AskPlayFirst asks until the first character of a line is 'y' or 'n'.
// It never gives up and never falls back to a default answer.
func (that *Console) AskPlayFirst() bool {
	log := that.logger.With("method", "AskPlayFirst")

	that.println(promptPlayFirst)
	for {
		answer, err := that.readAnswer()
		if err == nil {
			return answer
		}

		that.logInputError(log, err)
		that.println(retryPlayFirst)
	}
}

// AskMove asks until the first character of a line is a digit naming one of
// available.
func (that *Console) AskMove(available []int) int {
	log := that.logger.With("method", "AskMove")

	that.println(promptMove)
	for {
		cell, err := that.readCell(available)
		if err == nil {
			return cell
		}

		that.logInputError(log, err)
		if errors.Is(err, apperror.ErrCellNotAvailable) {
			that.printf("The cell %d is not available\n", cell)
		}
		that.println(retryMove)
	}
}

func (that *Console) readAnswer() (bool, error) {
	line, err := that.readLine()
	if err != nil {
		return false, err
	}

	switch firstChar(line) {
	case 'y':
		return true, nil
	case 'n':
		return false, nil
	}

	return false, fmt.Errorf("%w: got %q", apperror.ErrInvalidAnswer, strings.TrimSpace(line))
}

func (that *Console) readCell(available []int) (int, error) {
	line, err := that.readLine()
	if err != nil {
		return 0, err
	}

	c := firstChar(line)
	if c < '0' || c > '9' {
		return 0, fmt.Errorf("%w: got %q", apperror.ErrInvalidCell, strings.TrimSpace(line))
	}

	cell := int(c - '0')
	if !slices.Contains(available, cell) {
		return cell, fmt.Errorf("%w: cell %d", apperror.ErrCellNotAvailable, cell)
	}

	return cell, nil
}

// readLine returns the next line of input. After a stream error it waits
// for the next backoff interval, so a closed input is retried slowly.
func (that *Console) readLine() (string, error) {
	line, err := that.in.ReadString('\n')
	if err == nil || (errors.Is(err, io.EOF) && line != "") {
		that.backOff.Reset()
		return line, nil
	}

	wait := that.backOff.NextBackOff()
	if wait == backoff.Stop {
		that.backOff.Reset()
		wait = that.backOff.NextBackOff()
	}
	that.sleep(wait)

	return "", fmt.Errorf("%w: %w", apperror.ErrReadInput, err)
}

func firstChar(line string) byte {
	if line == "" {
		return 0
	}

	return line[0]
}
