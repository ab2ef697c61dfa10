package queries

import (
	"errors"

	"aquaflow/internal/core/domain/model/kernel"
	"aquaflow/internal/pkg/guard"
)

var ErrGetLowStockLotsQueryIsNotConstructed = errors.New(
	"GetLowStockLotsQuery must be created via NewGetLowStockLotsQuery constructor",
)

// GetLowStockLotsQuery retrieves lots whose quantity has fallen to the
// reorder point. Feeds the low stock alert job and the replenishment view.
type GetLowStockLotsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetLowStockLotsQuery creates a query for lots at or below their reorder point.
func NewGetLowStockLotsQuery() GetLowStockLotsQuery {
	return GetLowStockLotsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetLowStockLotsQuery) Validate() error {
	return q.guard.Validate(ErrGetLowStockLotsQueryIsNotConstructed)
}

// GetLowStockLotsQueryResponse is one lot needing replenishment.
type GetLowStockLotsQueryResponse struct {
	LotID        kernel.UUID
	LotNumber    string
	ProductName  string
	Quantity     int
	ReorderPoint int
}
