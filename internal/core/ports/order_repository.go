// Package ports defines the contracts between the application core and
// infrastructure: repositories, the unit of work, and the outbound route
// estimator. Implementations live under internal/adapters.
package ports

import (
	"context"

	"aquaflow/internal/core/domain/model/kernel"
	"aquaflow/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and locks its row for the duration of
	// the current transaction. Must be called inside an active unit of work;
	// the confirmation workflow takes this lock before touching stock.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInPendingStatus retrieves orders awaiting confirmation.
	GetAllInPendingStatus(ctx context.Context) ([]*order.Order, error)
}
