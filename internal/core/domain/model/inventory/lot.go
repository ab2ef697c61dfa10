package inventory

import (
	"errors"
	"fmt"
	"time"

	"aquaflow/internal/core/domain/model/kernel"
	"aquaflow/internal/pkg/errs"
	"aquaflow/internal/pkg/guard"
)

var (
	// ErrLotIsNotConstructed is returned when using a Lot that bypassed its constructors.
	ErrLotIsNotConstructed = errors.New("Lot must be created via NewLot or RestoreLot")
	// ErrNotEnoughStock is returned by Decrement when the lot cannot cover the
	// requested quantity. Callers wrap it with the failing product's name.
	ErrNotEnoughStock = errors.New("not enough stock in lot")
)

// Lot tracks the stock of one product batch.
//
// Invariants:
//   - quantity is never negative: Decrement refuses to go below zero
//   - reorder point and minimum stock are non-negative
//
// A Lot is a shared resource: the confirmation workflow mutates it only
// under a row-level exclusive lock, and every other reader may observe a
// stale quantity.
type Lot struct {
	id           kernel.UUID
	productID    kernel.UUID
	lotNumber    string
	quantity     int
	reorderPoint int
	minimumStock int
	expiresAt    *time.Time
	guard        guard.ConstructorGuard
}

// NewLot creates a lot with validated, non-negative stock figures.
// lotNumber is optional and expiresAt may be nil for non-perishable stock.
func NewLot(id, productID kernel.UUID, lotNumber string, quantity, reorderPoint, minimumStock int, expiresAt *time.Time) (*Lot, error) {
	lot := &Lot{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		lot.setID(id),
		lot.setProductID(productID),
		lot.setQuantity(quantity),
		lot.setReorderPoint(reorderPoint),
		lot.setMinimumStock(minimumStock),
	); err != nil {
		return nil, err
	}

	lot.lotNumber = lotNumber
	lot.expiresAt = expiresAt
	return lot, nil
}

// RestoreLot rebuilds a lot from persistence.
func RestoreLot(id, productID kernel.UUID, lotNumber string, quantity, reorderPoint, minimumStock int, expiresAt *time.Time) (*Lot, error) {
	return NewLot(id, productID, lotNumber, quantity, reorderPoint, minimumStock, expiresAt)
}

// Validate ensures the lot came from a constructor.
func (l *Lot) Validate() error {
	if l == nil {
		return ErrLotIsNotConstructed
	}
	return l.guard.Validate(ErrLotIsNotConstructed)
}

// ID returns the lot identifier.
func (l *Lot) ID() kernel.UUID {
	return l.id
}

// ProductID returns the product this lot belongs to.
func (l *Lot) ProductID() kernel.UUID {
	return l.productID
}

// LotNumber returns the optional batch number from production.
func (l *Lot) LotNumber() string {
	return l.lotNumber
}

// Quantity returns the current stock level.
func (l *Lot) Quantity() int {
	return l.quantity
}

// ReorderPoint returns the level at which replenishment should be triggered.
func (l *Lot) ReorderPoint() int {
	return l.reorderPoint
}

// MinimumStock returns the safety-stock floor.
func (l *Lot) MinimumStock() int {
	return l.minimumStock
}

// ExpiresAt returns the expiry timestamp, or nil for non-perishable stock.
func (l *Lot) ExpiresAt() *time.Time {
	return l.expiresAt
}

// CanCover reports whether the lot holds at least the given quantity.
func (l *Lot) CanCover(quantity int) bool {
	return quantity >= 0 && l.quantity >= quantity
}

// Decrement removes quantity units from the lot. It returns ErrNotEnoughStock
// when the lot cannot cover the request, leaving the quantity untouched.
func (l *Lot) Decrement(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if l.quantity < quantity {
		return fmt.Errorf("%w: have %d, need %d", ErrNotEnoughStock, l.quantity, quantity)
	}
	l.quantity -= quantity
	return nil
}

// Restock adds quantity units to the lot.
func (l *Lot) Restock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity += quantity
	return nil
}

// BelowReorderPoint reports whether the lot needs replenishment.
func (l *Lot) BelowReorderPoint() bool {
	return l.quantity <= l.reorderPoint
}

func (l *Lot) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Lot) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("product id", err)
	}
	l.productID = id
	return nil
}

func (l *Lot) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is negative", quantity))
	}
	l.quantity = quantity
	return nil
}

func (l *Lot) setReorderPoint(point int) error {
	if point < 0 {
		return errs.NewValueIsInvalidErrorWithCause("reorder point",
			fmt.Errorf("%d is negative", point))
	}
	l.reorderPoint = point
	return nil
}

func (l *Lot) setMinimumStock(minimum int) error {
	if minimum < 0 {
		return errs.NewValueIsInvalidErrorWithCause("minimum stock",
			fmt.Errorf("%d is negative", minimum))
	}
	l.minimumStock = minimum
	return nil
}
