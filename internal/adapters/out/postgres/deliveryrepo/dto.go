// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery trip persistence.
package deliveryrepo

import (
	"time"

	"aquaflow/internal/core/domain/model/delivery"
	"aquaflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery
// trips. Each order has at most one trip, enforced by the unique index.
type DeliveryDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	CourierID        uuid.UUID `gorm:"type:uuid;index"`
	DepartureAt      time.Time
	EstimatedArrival time.Time
	Status           int `gorm:"index"`
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery domain aggregate to its database representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:               aggregate.ID().Bytes(),
		OrderID:          aggregate.OrderID().Bytes(),
		CourierID:        aggregate.CourierID().Bytes(),
		DepartureAt:      aggregate.DepartureAt(),
		EstimatedArrival: aggregate.EstimatedArrival(),
		Status:           int(aggregate.Status()),
	}
}

// toDomain converts a database DTO to a delivery domain aggregate.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(
		id,
		orderID,
		courierID,
		dto.DepartureAt,
		dto.EstimatedArrival,
		delivery.Status(dto.Status),
	)
}
