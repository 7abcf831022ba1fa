package mines

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"slices"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type Phase uint8

const (
	// Uninitialized fields have no mines yet; they are placed on the first
	// reveal so that the first cell is always safe.
	Uninitialized Phase = iota
	Placed
)

// Minefield is the state of one game. Cells are stored row by row, the
// cell at column x and row y is Cells[y*Size+x].
type Minefield struct {
	Size, MineCount  int
	Phase            Phase
	Exploded, Solved bool
	Cells            []Cell

	rnd *rand.Rand
}

// NewRand returns the random source used for mine placement. A zero seed
// picks a random one.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = new(maphash.Hash).Sum64()
	}
	return rand.New(rand.NewPCG(seed, seed))
}

func New(size, mineCount int, r *rand.Rand) (*Minefield, error) {
	if err := Validate(size, mineCount); err != nil {
		return nil, err
	}
	if r == nil {
		r = NewRand(0)
	}
	return &Minefield{
		Size:      size,
		MineCount: mineCount,
		Cells:     make([]Cell, size*size),
		rnd:       r,
	}, nil
}

// NewPlanted returns a field whose mines are already placed at the given
// points.
func NewPlanted(size int, mines ...Point) (*Minefield, error) {
	f, err := New(size, len(mines), nil)
	if err != nil {
		return nil, err
	}
	for _, p := range mines {
		if !f.InBounds(p.X, p.Y) {
			return nil, fmt.Errorf("%w: mine at (%d, %d)", ErrOutOfBounds, p.X, p.Y)
		}
		c := f.cell(p.X, p.Y)
		if c.Mine {
			return nil, fmt.Errorf("%w: duplicate mine at (%d, %d)", ErrInvalidConfiguration, p.X, p.Y)
		}
		c.Mine = true
	}
	f.calculateHints()
	f.Phase = Placed
	return f, nil
}

func DecodeMinefield(buf []byte) (*Minefield, error) {
	var f Minefield
	if err := gob.NewDecoder(bytes.NewBuffer(buf)).Decode(&f); err != nil {
		return nil, err
	}
	if err := Validate(f.Size, f.MineCount); err != nil {
		return nil, err
	}
	if len(f.Cells) != f.Size*f.Size {
		return nil, fmt.Errorf(
			"decoded field has %d cells, want %d", len(f.Cells), f.Size*f.Size,
		)
	}
	return &f, nil
}

func (f *Minefield) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Clone returns a deep copy of f. The copy shares f's random source.
func (f *Minefield) Clone() *Minefield {
	c := *f
	c.Cells = slices.Clone(f.Cells)
	return &c
}

func (f *Minefield) InBounds(x, y int) bool {
	return 0 <= x && x < f.Size && 0 <= y && y < f.Size
}

// Cell returns a copy of the cell at column x and row y.
func (f *Minefield) Cell(x, y int) Cell {
	return *f.cell(x, y)
}

func (f *Minefield) cell(x, y int) *Cell {
	return &f.Cells[y*f.Size+x]
}

func (f *Minefield) Over() bool {
	return f.Exploded || f.Solved
}

// HandleAction applies a single player action. Rejected actions return an
// error and leave the field untouched.
func (f *Minefield) HandleAction(x, y int, a Action) error {
	if f.Over() {
		return ErrGameOver
	}
	if !f.InBounds(x, y) {
		return fmt.Errorf(
			"%w: (%d, %d) is outside the %dx%d field", ErrOutOfBounds, x, y, f.Size, f.Size,
		)
	}

	switch a {
	case Reveal:
		f.handleReveal(x, y)
	case Mark:
		c := f.cell(x, y)
		if c.Revealed {
			return fmt.Errorf("%w: (%d, %d)", ErrRevealed, x, y)
		}
		c.Marked = !c.Marked
	default:
		return fmt.Errorf("%w: %s", ErrInvalidAction, a)
	}

	f.checkSolved()

	Log.WithFields(logrus.Fields{
		"x": x, "y": y, "action": a.String(),
		"exploded": f.Exploded, "solved": f.Solved,
	}).Debug("handled action")

	return nil
}

func (f *Minefield) handleReveal(x, y int) {
	if f.Phase == Uninitialized {
		if f.rnd == nil {
			f.rnd = NewRand(0)
		}
		f.placeMines(x, y)
		f.calculateHints()
		f.Phase = Placed
		f.reveal(x, y)
		return
	}
	if f.cell(x, y).Mine {
		f.Exploded = true
		return
	}
	f.reveal(x, y)
}

// checkSolved sets Solved when either every mine and nothing else is
// marked, or every cell that is not a mine is revealed.
func (f *Minefield) checkSolved() {
	if f.Phase != Placed || f.Exploded {
		return
	}
	var marked, markedMines, covered, coveredMines int
	for _, c := range f.Cells {
		if c.Marked {
			marked++
			if c.Mine {
				markedMines++
			}
		}
		if !c.Revealed {
			covered++
			if c.Mine {
				coveredMines++
			}
		}
	}
	if marked == f.MineCount && markedMines == f.MineCount {
		f.Solved = true
	} else if covered == f.MineCount && coveredMines == f.MineCount {
		f.Solved = true
	}
}

// Marked returns the number of marked cells.
func (f *Minefield) Marked() (n int) {
	for _, c := range f.Cells {
		if c.Marked {
			n++
		}
	}
	return
}
