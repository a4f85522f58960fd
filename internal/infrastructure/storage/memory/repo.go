package memory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"dogweb/internal/domain"
)

// MemoryRepository keeps the entries table in an in-memory SQLite database.
// An in-memory database lives only as long as the connection that opened it,
// so the repository pins a single connection for its whole lifetime.
type MemoryRepository struct {
	db   *sql.DB
	conn *sql.Conn
}

func NewMemoryRepository(ctx context.Context) (*MemoryRepository, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	conn, err := db.Conn(ctx)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to acquire sqlite connection: %w", err)
	}

	return &MemoryRepository{db: db, conn: conn}, nil
}

func (r *MemoryRepository) Initialize(ctx context.Context) error {
	const createTable = `
CREATE TABLE IF NOT EXISTS entries (
    id   INTEGER PRIMARY KEY,
    name TEXT NOT NULL
)`
	if _, err := r.conn.ExecContext(ctx, createTable); err != nil {
		return fmt.Errorf("create entries table: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx,
		`INSERT INTO entries (id, name) VALUES (?, ?)`,
		domain.SeedEntryID, domain.SeedEntryName,
	); err != nil {
		return fmt.Errorf("insert seed entry: %w", err)
	}

	return nil
}

func (r *MemoryRepository) LookupNameByID(ctx context.Context, id int64) (string, error) {
	var name string

	err := r.conn.QueryRowContext(ctx, `SELECT name FROM entries WHERE id = ?`, id).Scan(&name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrEntryNotFound
		}
		return "", domain.NewDatabaseError("lookup", err)
	}

	return name, nil
}

func (r *MemoryRepository) Close() error {
	if err := r.conn.Close(); err != nil {
		_ = r.db.Close()
		return err
	}

	return r.db.Close()
}
