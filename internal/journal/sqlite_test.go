package journal

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper/internal/config"
)

func setupTestJournal(t *testing.T) *SQLite {
	t.Helper()
	s, err := NewSQLite(context.Background(), filepath.Join(t.TempDir(), "journal", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testRecord(recordedAt time.Time) Record {
	return Record{
		ID:         uuid.New(),
		Size:       9,
		MineCount:  10,
		Seed:       1<<63 + 5,
		Outcome:    Won,
		Moves:      17,
		Board:      []byte{1, 2, 3},
		RecordedAt: recordedAt,
	}
}

func TestJournalReadEmpty(t *testing.T) {
	s := setupTestJournal(t)

	_, err := s.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	records, err := s.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestJournalAddAndGet(t *testing.T) {
	s := setupTestJournal(t)
	ctx := context.Background()

	r := testRecord(time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, s.Add(ctx, r))

	got, err := s.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, r.ID, got.ID)
	assert.Equal(t, r.Seed, got.Seed)
	assert.Equal(t, r.Outcome, got.Outcome)
	assert.Equal(t, r.Moves, got.Moves)
	assert.Equal(t, r.Board, got.Board)
	assert.True(t, r.RecordedAt.Equal(got.RecordedAt))
}

func TestJournalRejectsDuplicate(t *testing.T) {
	s := setupTestJournal(t)
	ctx := context.Background()

	r := testRecord(time.Now())
	require.NoError(t, s.Add(ctx, r))
	assert.ErrorIs(t, s.Add(ctx, r), ErrDuplicate)
}

func TestJournalListNewestFirst(t *testing.T) {
	s := setupTestJournal(t)
	ctx := context.Background()

	base := time.Date(2026, time.March, 3, 9, 0, 0, 0, time.UTC)
	var ids []uuid.UUID
	for i := range 5 {
		// whole and fractional seconds mixed to check text ordering
		r := testRecord(base.Add(time.Duration(i) * 1500 * time.Millisecond))
		ids = append(ids, r.ID)
		require.NoError(t, s.Add(ctx, r))
	}

	records, err := s.List(ctx, 3)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, ids[4], records[0].ID)
	assert.Equal(t, ids[3], records[1].ID)
	assert.Equal(t, ids[2], records[2].ID)
}

func TestJournalReopenKeepsRecords(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := NewSQLite(ctx, path)
	require.NoError(t, err)
	r := testRecord(time.Now())
	require.NoError(t, s.Add(ctx, r))
	version, dirty, err := Version(s)
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)
	require.NoError(t, s.Close())

	s, err = NewSQLite(ctx, path)
	require.NoError(t, err)
	defer s.Close()
	_, err = s.Get(ctx, r.ID)
	assert.NoError(t, err)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	j, err := Open(ctx, config.Journal{Driver: config.DriverNone})
	require.NoError(t, err)
	assert.IsType(t, Discard{}, j)
	assert.NoError(t, j.Add(ctx, testRecord(time.Now())))
	version, _, err := Version(j)
	require.NoError(t, err)
	assert.Zero(t, version)

	j, err = Open(ctx, config.Journal{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "open.db"),
	})
	require.NoError(t, err)
	assert.IsType(t, &SQLite{}, j)
	require.NoError(t, j.Close())

	_, err = Open(ctx, config.Journal{Driver: "mongo"})
	assert.Error(t, err)
}
