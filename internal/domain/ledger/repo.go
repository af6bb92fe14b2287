package ledger

import (
	"context"
)

// Repository defines the interface for ledger persistence.
type Repository interface {
	// Insert appends one movement row; created_at is assigned by the store.
	Insert(ctx context.Context, materialID int64, dir Direction, qty int64) error

	// DeleteAll removes every ledger row (admin reset). Returns rows deleted.
	DeleteAll(ctx context.Context) (int64, error)

	// Count returns the number of ledger rows.
	Count(ctx context.Context) (int64, error)
}
