package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/alexanderramin/shopfloor/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestUoW(t *testing.T) (*sql.DB, *db.SQLiteUnitOfWork) {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database, db.NewSQLiteUnitOfWork(database)
}

func insertProjectWithItem(ctx context.Context, tx db.DBTX, id string) error {
	if _, err := tx.ExecContext(ctx, `INSERT INTO projects (id, vendor, production_number, created_at, updated_at)
		VALUES (?, 'Vendor', 'P-1', 'x', 'x')`, id); err != nil {
		return err
	}
	_, err := tx.ExecContext(ctx, `INSERT INTO management_items (id, project_id, name) VALUES (?, ?, 'BOM')`, id+"-item", id)
	return err
}

func countRows(t *testing.T, database *sql.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&n))
	return n
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	database, uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertProjectWithItem(ctx, tx, "p1")
	})
	require.NoError(t, err)

	assert.Equal(t, 1, countRows(t, database, "projects"))
	assert.Equal(t, 1, countRows(t, database, "management_items"))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	database, uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertProjectWithItem(ctx, tx, "p2"); err != nil {
			return err
		}
		return errors.New("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")

	assert.Equal(t, 0, countRows(t, database, "projects"))
	assert.Equal(t, 0, countRows(t, database, "management_items"))
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	database, uow := openTestUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertProjectWithItem(ctx, tx, "p3")
			panic("boom")
		})
	})

	assert.Equal(t, 0, countRows(t, database, "projects"))
}
