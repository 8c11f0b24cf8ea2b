package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"tripvault/internal/dbx"
	"tripvault/internal/server/migrations"
)

// PostgresBackend stores each collection as a single jsonb row in the
// collections table. Replace runs delete+insert in one transaction, which
// keeps the whole-collection write atomic.
type PostgresBackend struct {
	db *sql.DB
}

// NewPostgresBackend opens the database via the pgx stdlib driver and runs
// the embedded goose migrations.
func NewPostgresBackend(ctx context.Context, dsn string) (*PostgresBackend, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return &PostgresBackend{db: db}, nil
}

// NewPostgresBackendWithDB wraps an existing connection without running
// migrations. Used by tests.
func NewPostgresBackendWithDB(db *sql.DB) *PostgresBackend {
	return &PostgresBackend{db: db}
}

func (b *PostgresBackend) Load(ctx context.Context, name string) ([]byte, error) {
	query := `SELECT data FROM collections WHERE name = $1`

	var raw []byte
	err := b.db.QueryRowContext(ctx, query, name).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return raw, nil
}

func (b *PostgresBackend) Replace(ctx context.Context, name string, data []byte) error {
	return dbx.WithTx(ctx, b.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM collections WHERE name = $1`, name); err != nil {
			return fmt.Errorf("db error: %w", err)
		}

		query := `INSERT INTO collections (name, data, updated_at) VALUES ($1, $2, now())`
		if _, err := tx.ExecContext(ctx, query, name, data); err != nil {
			return fmt.Errorf("db error: %w", err)
		}

		return nil
	})
}

func (b *PostgresBackend) Close() error {
	return b.db.Close()
}
