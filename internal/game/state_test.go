package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper/internal/command"
	"github.com/vancomm/minesweeper/internal/journal"
	"github.com/vancomm/minesweeper/internal/mines"
)

func planted(t *testing.T, size int, ms ...mines.Point) State {
	t.Helper()
	f, err := mines.NewPlanted(size, ms...)
	require.NoError(t, err)
	return State{Field: f}
}

func TestStepLeavesInputUntouched(t *testing.T) {
	s := planted(t, 3, mines.Point{X: 1, Y: 1})
	before := s.Field.Render()

	next, err := Step(s, command.Command{X: 1, Y: 1, Action: mines.Mark})
	require.NoError(t, err)

	assert.Equal(t, before, s.Field.Render())
	assert.Zero(t, s.Moves)
	assert.Equal(t, 1, next.Moves)
	assert.True(t, next.Field.Cell(1, 1).Marked)
	assert.True(t, next.Over())
	assert.Equal(t, journal.Won, next.Outcome())
}

func TestStepRejection(t *testing.T) {
	s := planted(t, 3, mines.Point{X: 1, Y: 1})

	next, err := Step(s, command.Command{X: 5, Y: 0, Action: mines.Reveal})
	assert.ErrorIs(t, err, mines.ErrOutOfBounds)
	assert.Equal(t, s, next)

	_, err = Step(State{}, command.Command{Action: mines.Reveal})
	assert.ErrorIs(t, err, ErrNoField)
}

func TestStepLoss(t *testing.T) {
	s := planted(t, 3, mines.Point{X: 1, Y: 1})

	s, err := Step(s, command.Command{X: 0, Y: 0, Action: mines.Reveal})
	require.NoError(t, err)
	require.False(t, s.Over())
	assert.Equal(t, journal.Abandoned, s.Outcome())

	s, err = Step(s, command.Command{X: 1, Y: 1, Action: mines.Reveal})
	require.NoError(t, err)
	assert.True(t, s.Over())
	assert.Equal(t, journal.Lost, s.Outcome())
	assert.Equal(t, 2, s.Moves)
}

func TestRecord(t *testing.T) {
	s := planted(t, 3, mines.Point{X: 1, Y: 1})
	s, err := Step(s, command.Command{X: 1, Y: 1, Action: mines.Mark})
	require.NoError(t, err)

	r, err := s.Record(42)
	require.NoError(t, err)
	assert.Equal(t, 3, r.Size)
	assert.Equal(t, 1, r.MineCount)
	assert.Equal(t, uint64(42), r.Seed)
	assert.Equal(t, journal.Won, r.Outcome)
	assert.Equal(t, 1, r.Moves)

	f, err := mines.DecodeMinefield(r.Board)
	require.NoError(t, err)
	assert.Equal(t, s.Field.Render(), f.Render())

	_, err = State{}.Record(0)
	assert.ErrorIs(t, err, ErrNoField)
}
