package mines

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrInvalidAction        = errors.New("invalid action")
	ErrOutOfBounds          = errors.New("out of bounds")
	ErrRevealed             = errors.New("cell is already revealed")
	ErrGameOver             = errors.New("game is over")
)

// Validate reports whether a size x size field can hold mineCount mines and
// still leave a safe first cell.
func Validate(size, mineCount int) error {
	if size <= 0 {
		return fmt.Errorf("%w: field size must be positive, got %d", ErrInvalidConfiguration, size)
	}
	if mineCount < 0 || mineCount >= size*size {
		return fmt.Errorf(
			"%w: mine count must be in [0, %d), got %d",
			ErrInvalidConfiguration, size*size, mineCount,
		)
	}
	return nil
}
