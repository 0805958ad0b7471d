package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"studio-booking/internal/data/entity"

	"github.com/jackc/pgx/v5/pgconn"
)

// Every store call is bounded; a hung store surfaces as ErrStoreUnavailable,
// never as an indefinite block.
const storeTimeout = 5 * time.Second

// Reads are retried with linear backoff. Writes are never retried: retrying
// a timed-out insert risks a duplicate booking, so a failed write goes back
// to the caller for explicit re-submission.
const (
	readAttempts = 3
	retryBackoff = 150 * time.Millisecond
)

// storeErr maps driver failures onto the shared taxonomy. Constraint
// violations (SQLSTATE 23xxx, including a future (date, time-range)
// exclusion constraint on confirmed rows) come back as ErrConflict so a
// racing write is surfaced, never silently corrupting.
func storeErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "23") {
		return fmt.Errorf("%s: %w: %v", op, entity.ErrConflict, err)
	}

	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return fmt.Errorf("%s: %w: %v", op, entity.ErrStoreUnavailable, err)
	}

	return fmt.Errorf("%s: %w", op, err)
}

// readRetry runs a read against the store, retrying only when the store
// itself was unavailable. fn receives a timeout-bounded context per attempt.
func readRetry(ctx context.Context, fn func(context.Context) error) error {
	var err error
	for attempt := 1; attempt <= readAttempts; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, storeTimeout)
		err = fn(callCtx)
		cancel()

		if err == nil || !errors.Is(err, entity.ErrStoreUnavailable) {
			return err
		}
		if attempt == readAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return err
		case <-time.After(time.Duration(attempt) * retryBackoff):
		}
	}
	return err
}
