package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper/internal/mines"
)

var ErrMalformed = errors.New("malformed command")

// Command is one parsed line of player input.
type Command struct {
	X, Y   int
	Action mines.Action
}

func (c Command) String() string {
	return fmt.Sprintf("%d %d %s", c.X, c.Y, c.Action)
}

func parseXY(twoStrings []string) (x int, y int, err error) {
	if x, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = fmt.Errorf("%w: column must be an int, got %q", ErrMalformed, twoStrings[0])
		return
	}
	if y, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = fmt.Errorf("%w: row must be an int, got %q", ErrMalformed, twoStrings[1])
		return
	}
	return
}

// Parse reads "<column> <row> <mine|free>". Coordinates are zero based and
// are not checked against any field here.
func Parse(line string) (Command, error) {
	parts := strings.Fields(line)
	if len(parts) != 3 {
		return Command{}, fmt.Errorf(
			"%w: expected <column> <row> <mine|free>, got %d arguments",
			ErrMalformed, len(parts),
		)
	}
	x, y, err := parseXY(parts[:2])
	if err != nil {
		return Command{}, err
	}
	action, err := mines.ParseAction(parts[2])
	if err != nil {
		return Command{}, err
	}
	return Command{X: x, Y: y, Action: action}, nil
}

// ParseMineCount reads the answer to the mine count prompt.
func ParseMineCount(line string) (int, error) {
	s := strings.TrimSpace(line)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: mine count must be an int, got %q", ErrMalformed, s)
	}
	return n, nil
}
