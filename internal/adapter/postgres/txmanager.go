package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/kitchentory-backend/internal/domain"
)

// DefaultMaxAttempts is how many times RunInTx runs fn when it keeps failing
// with a transient error.
const DefaultMaxAttempts = 3

// TxManager runs functions inside a transaction carried by the context.
// A RunInTx call made inside another joins the outer transaction.
type TxManager struct {
	pool        *pgxpool.Pool
	log         *slog.Logger
	maxAttempts int
	backoff     time.Duration
}

// NewTxManager creates a new TxManager.
func NewTxManager(pool *pgxpool.Pool, log *slog.Logger) *TxManager {
	if log == nil {
		log = slog.Default()
	}
	return &TxManager{
		pool:        pool,
		log:         log.With("component", "txmanager"),
		maxAttempts: DefaultMaxAttempts,
		backoff:     20 * time.Millisecond,
	}
}

// RunInTx executes fn within a database transaction.
// Isolation level: Read Committed (PostgreSQL default).
// On success: commits.
// On error from fn: rolls back and returns the error.
// On panic from fn: rolls back and re-panics.
//
// When fn or the commit fails with a transient error (serialization
// failure, deadlock, lock timeout) the whole transaction is retried up to
// maxAttempts times. fn must therefore be free of side effects outside
// the database.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if InTx(ctx) {
		// Retries belong to the outermost call.
		return fn(ctx)
	}

	var err error
	for attempt := 1; attempt <= m.maxAttempts; attempt++ {
		err = m.runOnce(ctx, fn)
		if err == nil || !isTransient(err) {
			return err
		}
		if attempt == m.maxAttempts {
			break
		}
		m.log.WarnContext(ctx, "transient transaction failure, retrying",
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()),
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * m.backoff):
		}
	}
	if !errors.Is(err, domain.ErrTransient) {
		err = fmt.Errorf("%w: %w", domain.ErrTransient, err)
	}
	return err
}

func (m *TxManager) runOnce(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

func isTransient(err error) bool {
	return errors.Is(err, domain.ErrTransient) || isTransientPgError(err)
}
