package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	// import the SQLite driver to register it with the database/sql package.
	_ "github.com/mattn/go-sqlite3"

	"github.com/rocketscienceinc/tictactoe-solver/internal/report"
)

type Storage struct {
	Connection *sql.DB
}

func New(path string) (*Storage, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	if err = conn.Ping(); err != nil {
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	return &Storage{Connection: conn}, nil
}

func (that *Storage) Init(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS solves (
		run_at      TEXT,
		positions   INTEGER,
		leaves      INTEGER,
		wins        INTEGER,
		losses      INTEGER,
		ties        INTEGER,
		root_value  INTEGER,
		duration_ms INTEGER
	)`

	if _, err := that.Connection.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("can't create table: %w", err)
	}

	return nil
}

// SaveSummary - appends one run's aggregate outcome to the archive.
func (that *Storage) SaveSummary(ctx context.Context, summary report.Summary, duration time.Duration) error {
	query := `INSERT INTO solves (run_at, positions, leaves, wins, losses, ties, root_value, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := that.Connection.ExecContext(ctx, query,
		time.Now().UTC().Format(time.RFC3339),
		summary.Positions,
		summary.Leaves,
		summary.Wins,
		summary.Losses,
		summary.Ties,
		summary.RootValue,
		duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("can't insert summary: %w", err)
	}

	return nil
}

func (that *Storage) Close() error {
	if err := that.Connection.Close(); err != nil {
		return fmt.Errorf("can't close database: %w", err)
	}

	return nil
}
