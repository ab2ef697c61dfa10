package ports

import (
	"context"

	"aquaflow/internal/core/domain/model/kernel"
	"aquaflow/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalog products.
type ProductRepository interface {
	// Add persists a new product.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAllActive retrieves the sellable catalog.
	GetAllActive(ctx context.Context) ([]*product.Product, error)
}
