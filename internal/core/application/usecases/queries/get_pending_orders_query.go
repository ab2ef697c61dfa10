// Package queries contains read-side operations of the CQRS split. Query
// handlers read projections straight from the database with raw SQL and
// return plain response structs, bypassing the aggregates.
package queries

import (
	"errors"
	"time"

	"aquaflow/internal/core/domain/model/kernel"
	"aquaflow/internal/pkg/guard"
)

var ErrGetPendingOrdersQueryIsNotConstructed = errors.New(
	"GetPendingOrdersQuery must be created via NewGetPendingOrdersQuery constructor",
)

// GetPendingOrdersQuery retrieves all orders awaiting confirmation.
type GetPendingOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingOrdersQuery creates a query for orders awaiting confirmation.
func NewGetPendingOrdersQuery() GetPendingOrdersQuery {
	return GetPendingOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrdersQueryIsNotConstructed)
}

// GetPendingOrdersQueryResponse is one pending order row.
type GetPendingOrdersQueryResponse struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	ShippingAddress string
	TotalCents      int64
	PlacedAt        time.Time
}
