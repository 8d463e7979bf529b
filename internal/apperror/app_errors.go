package apperror

import "errors"

var (
	ErrReadInput        = errors.New("could not read input")
	ErrInvalidAnswer    = errors.New("answer must start with 'y' or 'n'")
	ErrInvalidCell      = errors.New("cell must be a digit")
	ErrCellNotAvailable = errors.New("cell is not available")
)
