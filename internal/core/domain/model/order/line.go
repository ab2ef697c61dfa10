package order

import (
	"fmt"

	"aquaflow/internal/core/domain/model/kernel"
	"aquaflow/internal/pkg/errs"
)

// Line is one order position: a product, the ordered quantity and a snapshot
// of the unit price taken at order-creation time. Lines are immutable after
// the order is created; the subtotal is derived, never stored independently
// of price and quantity.
type Line struct {
	productID   kernel.UUID
	productName string
	quantity    int
	unitPrice   kernel.Money
}

// NewLine creates a validated order line. The product name is carried so
// stock failures can name the product without another lookup.
func NewLine(productID kernel.UUID, productName string, quantity int, unitPrice kernel.Money) (Line, error) {
	if err := productID.Validate(); err != nil {
		return Line{}, errs.NewValueIsRequiredErrorWithCause("product id", err)
	}
	if productName == "" {
		return Line{}, errs.NewValueIsRequiredError("product name")
	}
	if quantity <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Line{
		productID:   productID,
		productName: productName,
		quantity:    quantity,
		unitPrice:   unitPrice,
	}, nil
}

// ProductID returns the referenced product.
func (l Line) ProductID() kernel.UUID {
	return l.productID
}

// ProductName returns the product name snapshot.
func (l Line) ProductName() string {
	return l.productName
}

// Quantity returns the ordered quantity.
func (l Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the price snapshot per unit.
func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Subtotal returns unit price times quantity.
func (l Line) Subtotal() kernel.Money {
	subtotal, _ := l.unitPrice.MultiplyBy(l.quantity)
	return subtotal
}

// Validate rejects zero-value lines that bypassed NewLine.
func (l Line) Validate() error {
	if l.productID.Validate() != nil || l.productName == "" || l.quantity <= 0 {
		return errs.NewValueIsInvalidError("line must be created via NewLine")
	}
	return nil
}
