package repository

import (
	"context"
	"errors"

	"github.com/deppfellow/go-qna/internal/errs"
	"github.com/jackc/pgx/v5"
)

// withTx runs fn inside a transaction.
//
// The transaction is rolled back on every path that does not reach Commit,
// including a panic in fn. Rollback after a successful Commit is a no-op.
// Errors from fn are returned unchanged; begin and commit failures are
// classified here as Access and Commit.
func withTx(ctx context.Context, pool Pool, fn func(tx pgx.Tx) error) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return errs.NewDbError(errs.Access, "failed to begin transaction", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.NewDbError(errs.Commit, "failed to commit transaction", err)
	}
	return nil
}

// lockError classifies the failure of the initial SELECT ... FOR UPDATE.
func lockError(entity string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.NewDbError(errs.NotFound, entity+" not found", err).ForEntity(entity)
	}
	return errs.NewDbError(errs.Access, "failed to read "+entity, err).ForEntity(entity)
}

// fetchError classifies the failure of a single-row fetch outside a transaction.
//
// A row that could not be mapped is FromRow; everything else, including a
// failed query, is NotFound ("could not retrieve").
func fetchError(entity string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.NewDbError(errs.NotFound, entity+" not found", err).ForEntity(entity)
	}
	if isScanError(err) {
		return errs.NewDbError(errs.FromRow, "failed to map "+entity+" row", err).ForEntity(entity)
	}
	return errs.NewDbError(errs.NotFound, "could not retrieve "+entity, err).ForEntity(entity)
}

func isScanError(err error) bool {
	var scanErr pgx.ScanArgError
	return errors.As(err, &scanErr)
}
