// Package inventoryrepo provides data transfer objects and mapping functions
// for stock lot persistence.
package inventoryrepo

import (
	"time"

	"aquaflow/internal/core/domain/model/inventory"
	"aquaflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// LotDTO represents the database structure for persisting stock lots. A
// product has at most one active lot, enforced by the unique index.
type LotDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID    uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	LotNumber    string
	Quantity     int
	ReorderPoint int
	MinimumStock int
	ExpiresAt    *time.Time
}

// TableName specifies the database table name for lot entities.
func (LotDTO) TableName() string {
	return "lots"
}

// fromDomain converts a lot domain aggregate to its database representation.
func fromDomain(lot *inventory.Lot) LotDTO {
	return LotDTO{
		ID:           lot.ID().Bytes(),
		ProductID:    lot.ProductID().Bytes(),
		LotNumber:    lot.LotNumber(),
		Quantity:     lot.Quantity(),
		ReorderPoint: lot.ReorderPoint(),
		MinimumStock: lot.MinimumStock(),
		ExpiresAt:    lot.ExpiresAt(),
	}
}

// toDomain converts a database DTO to a lot domain aggregate.
func toDomain(dto LotDTO) (*inventory.Lot, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	return inventory.RestoreLot(
		id,
		productID,
		dto.LotNumber,
		dto.Quantity,
		dto.ReorderPoint,
		dto.MinimumStock,
		dto.ExpiresAt,
	)
}
