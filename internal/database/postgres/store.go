// Package postgres implements the repositories on PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/DragonKeeper_Go/internal/domain"
	"github.com/osse101/DragonKeeper_Go/internal/repository"
)

// Store implements repository.Store for PostgreSQL
type Store struct {
	db *pgxpool.Pool
}

var _ repository.Store = (*Store)(nil)

// NewStore creates a new Store
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// BeginTx starts a transaction. Rows read through it are locked until it ends.
func (s *Store) BeginTx(ctx context.Context) (repository.GameTx, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &gameTx{tx: tx}, nil
}

// gameTx implements repository.GameTx
type gameTx struct {
	tx pgx.Tx
}

func (t *gameTx) Commit(ctx context.Context) error {
	return mapTxErr(t.tx.Commit(ctx))
}

func (t *gameTx) Rollback(ctx context.Context) error {
	return mapTxErr(t.tx.Rollback(ctx))
}

func mapTxErr(err error) error {
	if errors.Is(err, pgx.ErrTxClosed) {
		return domain.ErrTxClosed
	}
	return err
}
