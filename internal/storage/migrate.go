package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate creates the two tables if they are missing. The schema is
// small enough that a migration tool would be overkill.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	op := "internal/storage/migrate.go Migrate"

	sql_query := `
	CREATE TABLE IF NOT EXISTS mood_entries (
		id TEXT PRIMARY KEY,
		mood VARCHAR(50) NOT NULL,
		journal VARCHAR(1000),
		sentiment DOUBLE PRECISION,
		comfort_message VARCHAR(500),
		suggestions TEXT,
		created_at TIMESTAMPTZ NOT NULL
	);

	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		first_name VARCHAR(100) NOT NULL,
		last_name VARCHAR(100) NOT NULL,
		email VARCHAR(100) UNIQUE NOT NULL,
		password_hash VARCHAR(100) NOT NULL
	);
	`

	if _, err := pool.Exec(ctx, sql_query); err != nil {
		return fmt.Errorf("failure to migrate in %s: %w", op, err)
	}

	return nil
}
