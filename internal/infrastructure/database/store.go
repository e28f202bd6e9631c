package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"eventreg/internal/infrastructure/database/sqlc_generated"
	"eventreg/internal/ports/output"
)

var _ output.Store = (*Store)(nil)

// Store is the PostgreSQL implementation of output.Store.
type Store struct {
	pool   *pgxpool.Pool
	q      *sqlc_generated.Queries
	inTx   bool
	events *EventRepository
	people *AttendeeRepository
}

func NewStore(pool *pgxpool.Pool) *Store {
	return newStore(pool, sqlc_generated.New(pool), false)
}

func newStore(pool *pgxpool.Pool, q *sqlc_generated.Queries, inTx bool) *Store {
	return &Store{
		pool:   pool,
		q:      q,
		inTx:   inTx,
		events: NewEventRepository(q),
		people: NewAttendeeRepository(q),
	}
}

func (s *Store) Events() output.EventRepository { return s.events }

func (s *Store) Attendees() output.AttendeeRepository { return s.people }

func (s *Store) WithTx(ctx context.Context, fn func(ctx context.Context, tx output.Store) error) error {
	if s.inTx {
		return fn(ctx, s)
	}

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(ctx, newStore(s.pool, s.q.WithTx(tx), true)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}
