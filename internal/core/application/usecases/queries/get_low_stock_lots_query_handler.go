package queries

import (
	"context"

	"aquaflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLowStockLotsQueryHandler lists lots at or below their reorder point,
// emptiest first.
type GetLowStockLotsQueryHandler struct {
	db *gorm.DB
}

// NewGetLowStockLotsQueryHandler creates a handler for low stock queries.
func NewGetLowStockLotsQueryHandler(db *gorm.DB) GetLowStockLotsQueryHandler {
	return GetLowStockLotsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetLowStockLotsQueryHandler) Handle(
	ctx context.Context,
	query GetLowStockLotsQuery,
) ([]GetLowStockLotsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	lots := make([]GetLowStockLotsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			l.id,
			l.lot_number,
			p.name,
			l.quantity,
			l.reorder_point
		FROM lots l
		JOIN products p ON p.id = l.product_id
		WHERE l.quantity <= l.reorder_point
		ORDER BY l.quantity
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetLowStockLotsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.LotNumber,
			&resp.ProductName,
			&resp.Quantity,
			&resp.ReorderPoint,
		)
		if err != nil {
			return nil, err
		}

		if resp.LotID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		lots = append(lots, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lots, nil
}
