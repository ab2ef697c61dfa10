package commands

import (
	"errors"

	"aquaflow/internal/core/domain/model/kernel"
	"aquaflow/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrShippingAddressIsRequired = errors.New("shipping address is required")
	ErrOrderLinesAreRequired     = errors.New("at least one order line is required")
	ErrLineQuantityIsInvalid     = errors.New("line quantity must be greater than 0")
)

// OrderLineInput is one requested product/quantity pair. Prices are not
// accepted from callers; the handler snapshots them from the catalog.
type OrderLineInput struct {
	ProductID kernel.UUID
	Quantity  int
}

// CreateOrderCommand represents a request to place a new pending order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), customerID,
//	    "Av. Los Alamos 742", "dejar en porteria",
//	    []OrderLineInput{{ProductID: bottleID, Quantity: 20}})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerID      kernel.UUID
	shippingAddress string
	comments        string
	lines           []OrderLineInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates identifiers, the address, and that every line has a known
// product id and positive quantity.
func NewCreateOrderCommand(
	orderID, customerID kernel.UUID,
	shippingAddress, comments string,
	lines []OrderLineInput,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		comments: comments,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setShippingAddress(shippingAddress),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the ordering customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ShippingAddress returns the delivery destination.
func (c CreateOrderCommand) ShippingAddress() string {
	return c.shippingAddress
}

// Comments returns free-form delivery notes, possibly empty.
func (c CreateOrderCommand) Comments() string {
	return c.comments
}

// Lines returns the requested product/quantity pairs.
func (c CreateOrderCommand) Lines() []OrderLineInput {
	out := make([]OrderLineInput, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setShippingAddress(shippingAddress string) error {
	if shippingAddress == "" {
		return ErrShippingAddressIsRequired
	}

	c.shippingAddress = shippingAddress
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLineInput) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}

	for _, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			return err
		}
		if line.Quantity <= 0 {
			return ErrLineQuantityIsInvalid
		}
	}

	c.lines = make([]OrderLineInput, len(lines))
	copy(c.lines, lines)
	return nil
}
