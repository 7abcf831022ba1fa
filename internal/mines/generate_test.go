package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func layout(f *Minefield) (mines []Point) {
	for y := range f.Size {
		for x := range f.Size {
			if f.Cell(x, y).Mine {
				mines = append(mines, Point{x, y})
			}
		}
	}
	return
}

func TestPlacementFollowsSeed(t *testing.T) {
	a, err := New(16, 40, NewRand(99))
	require.NoError(t, err)
	b, err := New(16, 40, NewRand(99))
	require.NoError(t, err)

	require.NoError(t, a.HandleAction(8, 8, Reveal))
	require.NoError(t, b.HandleAction(8, 8, Reveal))

	assert.Equal(t, layout(a), layout(b))
	assert.Len(t, layout(a), 40)
}

func TestPlacementFillsDenseField(t *testing.T) {
	// every cell but the start is a mine, most of them placed by the
	// candidate list
	f, err := New(10, 99, NewRand(5))
	require.NoError(t, err)

	f.placeMines(3, 7)

	assert.Equal(t, 99, countMines(f))
	assert.False(t, f.Cell(3, 7).Mine)
}

func TestPlacementSpreadsMines(t *testing.T) {
	r := NewRand(11)
	hits := make([]int, 25)
	for range 400 {
		f, err := New(5, 5, r)
		require.NoError(t, err)
		f.placeMines(0, 0)
		for i, c := range f.Cells {
			if c.Mine {
				hits[i]++
			}
		}
	}

	assert.Zero(t, hits[0])
	for i := 1; i < len(hits); i++ {
		assert.Positive(t, hits[i], "cell %d never got a mine", i)
	}
}
