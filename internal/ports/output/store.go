//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=../../mocks/mock_store.go -package=mocks
package output

import "context"

// Store groups the repositories of one storage backend.
type Store interface {
	Events() EventRepository
	Attendees() AttendeeRepository
	// WithTx runs fn inside a single transaction. Repositories obtained from the
	// Store passed to fn take part in it. Nested calls reuse the outer
	// transaction.
	WithTx(ctx context.Context, fn func(ctx context.Context, tx Store) error) error
	Ping(ctx context.Context) error
}
