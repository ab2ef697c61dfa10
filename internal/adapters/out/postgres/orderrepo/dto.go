// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"aquaflow/internal/core/domain/model/kernel"
	"aquaflow/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The denormalized total keeps list queries cheap; lines live in their own
// table and are written once at creation.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID `gorm:"type:uuid;index"`
	ShippingAddress string
	Status          int `gorm:"index"`
	TotalCents      int64
	Comments        string
	PlacedAt        time.Time
	Lines           []LineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO represents one order line row. Lines are immutable after the order
// is created, so updates never touch this table.
type LineDTO struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	OrderID        uuid.UUID `gorm:"type:uuid;index"`
	ProductID      uuid.UUID `gorm:"type:uuid;index"`
	ProductName    string
	Quantity       int
	UnitPriceCents int64
}

// TableName specifies the database table name for order line entities.
func (LineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	lines := make([]LineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, LineDTO{
			OrderID:        aggregate.ID().Bytes(),
			ProductID:      line.ProductID().Bytes(),
			ProductName:    line.ProductName(),
			Quantity:       line.Quantity(),
			UnitPriceCents: line.UnitPrice().Cents(),
		})
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		CustomerID:      aggregate.CustomerID().Bytes(),
		ShippingAddress: aggregate.ShippingAddress().String(),
		Status:          int(aggregate.Status()),
		TotalCents:      aggregate.Total().Cents(),
		Comments:        aggregate.Comments(),
		PlacedAt:        aggregate.PlacedAt(),
		Lines:           lines,
	}
}

// toDomain converts a database DTO to an order domain aggregate. The total is
// recomputed from the lines by RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(dto.ShippingAddress)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		productID, lineErr := kernel.UUIDFromBytes(lineDTO.ProductID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		unitPrice, lineErr := kernel.NewMoney(lineDTO.UnitPriceCents)
		if lineErr != nil {
			return nil, lineErr
		}

		line, lineErr := order.NewLine(productID, lineDTO.ProductName, lineDTO.Quantity, unitPrice)
		if lineErr != nil {
			return nil, lineErr
		}

		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id,
		customerID,
		address,
		lines,
		order.Status(dto.Status),
		dto.Comments,
		dto.PlacedAt,
	)
}
