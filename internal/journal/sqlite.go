package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
)

// Fixed width so that recorded_at sorts as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type SQLite struct {
	mu       sync.Mutex
	db       *sql.DB
	migrator *migrate.Migrate
}

func NewSQLite(ctx context.Context, path string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("unable to create journal directory: %w", err)
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("unable to open sqlite journal: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to open sqlite journal: %w", err)
	}
	migrator, err := sqliteMigrator(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	if err := up(migrator); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLite{db: db, migrator: migrator}, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

// Add inserts a record. Adding a record whose id is already present fails
// with [ErrDuplicate].
func (s *SQLite) Add(ctx context.Context, r Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
INSERT INTO game_record (
	game_id, size, mine_count, seed, outcome, moves, board, recorded_at
)
VALUES (?, ?, ?, ?, ?, ?, ?, ?);`,
		r.ID.String(), r.Size, r.MineCount, int64(r.Seed),
		string(r.Outcome), r.Moves, r.Board,
		r.RecordedAt.UTC().Format(timeLayout),
	)
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return fmt.Errorf("%w: %s", ErrDuplicate, r.ID)
	}
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*Record, error) {
	var (
		r          Record
		id         string
		seed       int64
		outcome    string
		recordedAt string
	)
	if err := row.Scan(
		&id, &r.Size, &r.MineCount, &seed, &outcome, &r.Moves, &r.Board, &recordedAt,
	); err != nil {
		return nil, err
	}
	var err error
	if r.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("invalid game_id %q: %w", id, err)
	}
	if r.RecordedAt, err = time.Parse(timeLayout, recordedAt); err != nil {
		return nil, fmt.Errorf("invalid recorded_at %q: %w", recordedAt, err)
	}
	r.Seed = uint64(seed)
	r.Outcome = Outcome(outcome)
	return &r, nil
}

const selectRecord = `
SELECT game_id, size, mine_count, seed, outcome, moves, board, recorded_at
FROM game_record`

func (s *SQLite) Get(ctx context.Context, id uuid.UUID) (*Record, error) {
	row := s.db.QueryRowContext(ctx, selectRecord+` WHERE game_id = ?;`, id.String())
	r, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return r, err
}

func (s *SQLite) List(ctx context.Context, limit int) ([]Record, error) {
	rows, err := s.db.QueryContext(
		ctx, selectRecord+` ORDER BY recorded_at DESC LIMIT ?;`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *r)
	}
	return records, rows.Err()
}
