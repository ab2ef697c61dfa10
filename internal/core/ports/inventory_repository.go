package ports

import (
	"context"

	"aquaflow/internal/core/domain/model/inventory"
	"aquaflow/internal/core/domain/model/kernel"
)

// InventoryRepository defines the persistence contract for stock lots.
type InventoryRepository interface {
	// Add persists a new lot.
	Add(ctx context.Context, lot *inventory.Lot) error

	// Update persists changes to an existing lot.
	Update(ctx context.Context, lot *inventory.Lot) error

	// Get retrieves a lot by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*inventory.Lot, error)

	// GetByProductID retrieves the active lot for a product without locking.
	GetByProductID(ctx context.Context, productID kernel.UUID) (*inventory.Lot, error)

	// GetForUpdateByProductIDs retrieves the lots for the given products and
	// locks their rows for the duration of the current transaction. Rows are
	// locked in ascending product-id order regardless of input order, so
	// concurrent confirmations acquire lot locks in the same sequence.
	// Returns errs.ObjectNotFoundError if any product has no lot.
	GetForUpdateByProductIDs(ctx context.Context, productIDs []kernel.UUID) ([]*inventory.Lot, error)

	// GetAllBelowReorderPoint retrieves lots whose quantity has reached the
	// reorder point. Used by the low stock alert job.
	GetAllBelowReorderPoint(ctx context.Context) ([]*inventory.Lot, error)
}
