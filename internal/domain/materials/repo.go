package materials

import (
	"context"
)

// Repository defines the interface for catalog persistence.
type Repository interface {
	// List returns all materials ordered by (he_nhom, ma_hang).
	List(ctx context.Context) ([]Material, error)

	// GetByID retrieves a material by internal id.
	GetByID(ctx context.Context, id int64) (*Material, error)

	// FindIDByCode resolves a human-readable code to the internal id.
	// Returns a NOT_FOUND apperror when no material carries the code.
	FindIDByCode(ctx context.Context, code string) (int64, error)

	// ExistsByCode reports whether a material with the code is present.
	ExistsByCode(ctx context.Context, code string) (bool, error)

	// Create inserts a new material and sets its ID.
	Create(ctx context.Context, m *Material) error

	// Count returns the number of catalog rows.
	Count(ctx context.Context) (int64, error)
}
