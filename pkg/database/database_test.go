package database

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"

	"github.com/ghuser/ordersvc/pkg/logger"
)

func TestNewPool_Unreachable(t *testing.T) {
	_, err := NewPool(context.Background(), "postgres://u:p@localhost:1/none?sslmode=disable&connect_timeout=1", logger.Discard())
	if err == nil {
		t.Fatal("expected error for unreachable database, got nil")
	}
}

// Integration tests, skipped unless DATABASE_URL is set.
func TestDatabaseIntegration(t *testing.T) {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set; skipping integration tests")
	}

	ctx := context.Background()
	d, err := NewPool(ctx, url, logger.Discard())
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	defer d.Close() //nolint:errcheck

	// Temp tables are per-connection; pin the pool to one connection.
	d.DB().SetMaxOpenConns(1)
	if _, err := d.DB().ExecContext(ctx, `CREATE TEMP TABLE tx_check (n INT)`); err != nil {
		t.Fatalf("create temp table: %v", err)
	}

	t.Run("Ping", func(t *testing.T) {
		if err := d.Ping(ctx); err != nil {
			t.Fatalf("Ping: %v", err)
		}
	})

	t.Run("WithTx_Commits", func(t *testing.T) {
		err := d.WithTx(ctx, func(tx *sql.Tx) error {
			_, err := tx.ExecContext(ctx, `INSERT INTO tx_check (n) VALUES (1)`)
			return err
		})
		if err != nil {
			t.Fatalf("WithTx: %v", err)
		}
		if got := countRows(t, d); got != 1 {
			t.Fatalf("rows: got %d, want 1", got)
		}
	})

	t.Run("WithTx_RollsBackOnError", func(t *testing.T) {
		sentinel := errors.New("abort")
		err := d.WithTx(ctx, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, `INSERT INTO tx_check (n) VALUES (2)`); err != nil {
				return err
			}
			return sentinel
		})
		if !errors.Is(err, sentinel) {
			t.Fatalf("expected sentinel error, got %v", err)
		}
		if got := countRows(t, d); got != 1 {
			t.Fatalf("rows after rollback: got %d, want 1", got)
		}
	})
}

func countRows(t *testing.T, d *Database) int {
	t.Helper()
	var n int
	if err := d.DB().QueryRowContext(context.Background(), `SELECT count(*) FROM tx_check`).Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}
