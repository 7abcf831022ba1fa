package journal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vancomm/minesweeper/internal/config"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

type Outcome string

const (
	Won       Outcome = "won"
	Lost      Outcome = "lost"
	Abandoned Outcome = "abandoned"
)

// Record describes a game that has ended. Board holds the final field as
// encoded by (*mines.Minefield).Bytes.
type Record struct {
	ID         uuid.UUID
	Size       int
	MineCount  int
	Seed       uint64
	Outcome    Outcome
	Moves      int
	Board      []byte
	RecordedAt time.Time
}

type Journal interface {
	Add(ctx context.Context, r Record) error
	// List returns up to limit records, newest first.
	List(ctx context.Context, limit int) ([]Record, error)
	Get(ctx context.Context, id uuid.UUID) (*Record, error)
	Close() error
}

// Open connects to the journal backend selected by c and brings its schema
// up to date.
func Open(ctx context.Context, c config.Journal) (Journal, error) {
	switch c.Driver {
	case config.DriverNone, "":
		return Discard{}, nil
	case config.DriverSQLite:
		return NewSQLite(ctx, c.Path)
	case config.DriverPostgres:
		return NewPostgres(ctx, c.DatabaseURL)
	default:
		return nil, fmt.Errorf("unknown journal driver %q", c.Driver)
	}
}

// Discard is a journal that keeps nothing.
type Discard struct{}

func (Discard) Add(context.Context, Record) error               { return nil }
func (Discard) List(context.Context, int) ([]Record, error)     { return nil, nil }
func (Discard) Get(context.Context, uuid.UUID) (*Record, error) { return nil, ErrNotFound }
func (Discard) Close() error                                    { return nil }
