// Package testdb hands end-to-end tests a PostgreSQL database taken from
// TEST_DATABASE_URI.
package testdb

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
)

const envDSN = "TEST_DATABASE_URI"

var ErrNoDatabase = errors.New(envDSN + " is not set")

type TestDBInstance struct {
	DSN  string
	pool *pgxpool.Pool
}

func NewTestDBInstance() (*TestDBInstance, error) {
	dsn := os.Getenv(envDSN)
	if dsn == "" {
		return nil, ErrNoDatabase
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect test db: %w", err)
	}

	return &TestDBInstance{DSN: dsn, pool: pool}, nil
}

// Reset empties every ledger and catalog table and restarts the id sequences.
func (db *TestDBInstance) Reset(ctx context.Context) error {
	_, err := db.pool.Exec(ctx,
		"TRUNCATE order_lines, orders, clients, services RESTART IDENTITY CASCADE")
	return err
}

// Exec runs seed statements.
func (db *TestDBInstance) Exec(ctx context.Context, sql string, args ...any) error {
	_, err := db.pool.Exec(ctx, sql, args...)
	return err
}

func (db *TestDBInstance) Down() {
	if err := db.Reset(context.Background()); err != nil {
		fmt.Printf("test db cleanup: %s\n", err)
	}
	db.pool.Close()
}
