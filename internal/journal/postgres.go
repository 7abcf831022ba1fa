package journal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Postgres struct {
	db       *pgxpool.Pool
	migrator *migrate.Migrate
}

func NewPostgres(ctx context.Context, url string) (*Postgres, error) {
	dbconfig, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("invalid journal database url: %w", err)
	}
	db, err := pgxpool.NewWithConfig(ctx, dbconfig)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}
	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}
	migrator, err := postgresMigrator(url)
	if err != nil {
		db.Close()
		return nil, err
	}
	if err := up(migrator); err != nil {
		migrator.Close()
		db.Close()
		return nil, err
	}
	return &Postgres{db: db, migrator: migrator}, nil
}

func (pg *Postgres) Close() error {
	srcErr, dbErr := pg.migrator.Close()
	pg.db.Close()
	return errors.Join(srcErr, dbErr)
}

func (pg *Postgres) Add(ctx context.Context, r Record) error {
	_, err := pg.db.Exec(
		ctx,
		`INSERT INTO game_record (
			game_id, size, mine_count, seed, outcome, moves, board, recorded_at
		)
		VALUES (
			@game_id, @size, @mine_count, @seed, @outcome, @moves, @board, @recorded_at
		);`,
		pgx.NamedArgs{
			"game_id":     r.ID.String(),
			"size":        r.Size,
			"mine_count":  r.MineCount,
			"seed":        int64(r.Seed),
			"outcome":     string(r.Outcome),
			"moves":       r.Moves,
			"board":       r.Board,
			"recorded_at": r.RecordedAt.UTC(),
		},
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return fmt.Errorf("%w: %s", ErrDuplicate, r.ID)
	}
	return err
}

type gameRecord struct {
	GameID     string    `db:"game_id"`
	Size       int       `db:"size"`
	MineCount  int       `db:"mine_count"`
	Seed       int64     `db:"seed"`
	Outcome    string    `db:"outcome"`
	Moves      int       `db:"moves"`
	Board      []byte    `db:"board"`
	RecordedAt time.Time `db:"recorded_at"`
}

func (g gameRecord) record() (*Record, error) {
	id, err := uuid.Parse(g.GameID)
	if err != nil {
		return nil, fmt.Errorf("invalid game_id %q: %w", g.GameID, err)
	}
	return &Record{
		ID:         id,
		Size:       g.Size,
		MineCount:  g.MineCount,
		Seed:       uint64(g.Seed),
		Outcome:    Outcome(g.Outcome),
		Moves:      g.Moves,
		Board:      g.Board,
		RecordedAt: g.RecordedAt,
	}, nil
}

func (pg *Postgres) Get(ctx context.Context, id uuid.UUID) (*Record, error) {
	rows, _ := pg.db.Query(
		ctx,
		"SELECT * FROM game_record WHERE game_id = $1",
		id.String(),
	)
	g, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[gameRecord])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return g.record()
}

func (pg *Postgres) List(ctx context.Context, limit int) ([]Record, error) {
	rows, _ := pg.db.Query(
		ctx,
		"SELECT * FROM game_record ORDER BY recorded_at DESC LIMIT $1",
		limit,
	)
	games, err := pgx.CollectRows(rows, pgx.RowToStructByName[gameRecord])
	if err != nil {
		return nil, err
	}
	records := make([]Record, 0, len(games))
	for _, g := range games {
		r, err := g.record()
		if err != nil {
			return nil, err
		}
		records = append(records, *r)
	}
	return records, nil
}
