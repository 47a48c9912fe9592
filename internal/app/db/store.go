package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	dbc "frenchreborn/internal/app/db/sqlc"
)

// Store is the persistence boundary shared by the domain packages.
// ExecTx runs fn atomically: either every statement issued through q commits or none does.
type Store interface {
	dbc.Querier
	ExecTx(ctx context.Context, fn func(q dbc.Querier) error) error
}

// TxBeginner is satisfied by *pgxpool.Pool and by pgxmock pools.
type TxBeginner interface {
	dbc.DBTX
	Begin(ctx context.Context) (pgx.Tx, error)
}

// PostgresStore implements Store on top of a pgx pool.
type PostgresStore struct {
	*dbc.Queries
	pool TxBeginner
}

// NewStore wraps a pool into a Store.
func NewStore(pool TxBeginner) *PostgresStore {
	return &PostgresStore{
		Queries: dbc.New(pool),
		pool:    pool,
	}
}

// ExecTx executes fn inside a single transaction, rolling back on any error.
func (s *PostgresStore) ExecTx(ctx context.Context, fn func(q dbc.Querier) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(s.Queries.WithTx(tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	return tx.Commit(ctx)
}

var _ Store = (*PostgresStore)(nil)
