package game

import (
	"errors"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/vancomm/minesweeper/internal/command"
	"github.com/vancomm/minesweeper/internal/journal"
	"github.com/vancomm/minesweeper/internal/mines"
)

var ErrNoField = errors.New("game has no field")

// State is a game between two commands.
type State struct {
	Field *mines.Minefield
	Moves int
}

func NewState(size, mineCount int, r *rand.Rand) (State, error) {
	f, err := mines.New(size, mineCount, r)
	if err != nil {
		return State{}, err
	}
	return State{Field: f}, nil
}

// Step applies c to s and returns the resulting state. s itself is left
// unchanged; on error the returned state is s.
func Step(s State, c command.Command) (State, error) {
	if s.Field == nil {
		return s, ErrNoField
	}
	next := State{Field: s.Field.Clone(), Moves: s.Moves + 1}
	if err := next.Field.HandleAction(c.X, c.Y, c.Action); err != nil {
		return s, err
	}
	return next, nil
}

func (s State) Over() bool {
	return s.Field != nil && s.Field.Over()
}

func (s State) Outcome() journal.Outcome {
	switch {
	case s.Field == nil:
		return journal.Abandoned
	case s.Field.Exploded:
		return journal.Lost
	case s.Field.Solved:
		return journal.Won
	default:
		return journal.Abandoned
	}
}

// Record describes s for the journal.
func (s State) Record(seed uint64) (journal.Record, error) {
	if s.Field == nil {
		return journal.Record{}, ErrNoField
	}
	board, err := s.Field.Bytes()
	if err != nil {
		return journal.Record{}, err
	}
	return journal.Record{
		ID:         uuid.New(),
		Size:       s.Field.Size,
		MineCount:  s.Field.MineCount,
		Seed:       seed,
		Outcome:    s.Outcome(),
		Moves:      s.Moves,
		Board:      board,
		RecordedAt: time.Now().UTC(),
	}, nil
}
