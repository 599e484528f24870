package testutil

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/stanza/internal/db"
)

// errInjected is returned when FailOnNthExecUoW has no Err set.
var errInjected = errors.New("injected exec failure")

// FailOnNthExecUoW runs a lexicon import in a real transaction but fails its
// FailOn-th write (counting from 1), so tests can check that a half-written
// import of vocabulary words or pronunciations is rolled back. Reads are
// never counted.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning import transaction: %w", err)
	}
	failErr := u.Err
	if failErr == nil {
		failErr = errInjected
	}
	if err := fn(ctx, &countingTx{DBTX: tx, failOn: u.FailOn, err: failErr}); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// countingTx is only used inside one WithinTx call, which runs on a single
// goroutine.
type countingTx struct {
	db.DBTX
	writes int
	failOn int
	err    error
}

func (c *countingTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	c.writes++
	if c.writes == c.failOn {
		return nil, c.err
	}
	return c.DBTX.ExecContext(ctx, query, args...)
}
