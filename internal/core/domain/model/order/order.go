package order

import (
	"errors"
	"time"

	"aquaflow/internal/core/domain/model/kernel"
	"aquaflow/internal/pkg/errs"
	"aquaflow/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when using an Order that bypassed its constructors.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
	// ErrOrderHasNoLines is returned when creating an order without line items.
	ErrOrderHasNoLines = errs.NewValueIsRequiredError("order lines")
)

// Order is the aggregate root for a customer order.
//
// Invariants:
//   - at least one line; lines are immutable after construction
//   - the denormalized total always equals the sum of line subtotals
//   - status transitions follow the Status state machine: an order is
//     confirmed exactly once, by the confirmation workflow
type Order struct {
	id              kernel.UUID
	customerID      kernel.UUID
	shippingAddress kernel.Address
	lines           []Line
	status          Status
	total           kernel.Money
	comments        string
	placedAt        time.Time
	guard           guard.ConstructorGuard
}

// NewOrder creates a pending order and computes its total from the lines.
//
// Parameters:
//   - id: unique order identifier
//   - customerID: the owning customer
//   - shippingAddress: destination used later for delivery scheduling
//   - lines: at least one validated line with price snapshots
//   - placedAt: order-creation instant
func NewOrder(id, customerID kernel.UUID, shippingAddress kernel.Address, lines []Line, comments string, placedAt time.Time) (*Order, error) {
	o := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setShippingAddress(shippingAddress),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	o.comments = comments
	o.placedAt = placedAt
	return o, nil
}

// RestoreOrder rebuilds an order from persistence with its stored status.
// The total is recomputed from the lines to keep the denormalization honest.
func RestoreOrder(id, customerID kernel.UUID, shippingAddress kernel.Address, lines []Line, status Status, comments string, placedAt time.Time) (*Order, error) {
	o, err := NewOrder(id, customerID, shippingAddress, lines, comments, placedAt)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	o.status = status
	return o, nil
}

// Validate ensures the order came from a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// ShippingAddress returns the delivery destination.
func (o *Order) ShippingAddress() kernel.Address {
	return o.shippingAddress
}

// Lines returns a copy of the order lines.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// Total returns the denormalized order total.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Comments returns free-form notes captured at creation.
func (o *Order) Comments() string {
	return o.comments
}

// PlacedAt returns the order-creation instant.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// PackageCount returns the sum of line quantities. Delivery scheduling uses
// it to pick the departure lead time.
func (o *Order) PackageCount() int {
	count := 0
	for _, line := range o.lines {
		count += line.Quantity()
	}
	return count
}

// Confirm transitions the order from Pending to Confirmed. The caller is
// responsible for decrementing stock and creating the delivery in the same
// transaction.
func (o *Order) Confirm() error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Cancel transitions the order from Pending to Cancelled.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// MarkDelivered transitions the order from Confirmed to Delivered.
func (o *Order) MarkDelivered() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setShippingAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.shippingAddress = address
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return ErrOrderHasNoLines
	}

	total := kernel.Money{}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
		total = total.Add(line.Subtotal())
	}

	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	o.total = total
	return nil
}
