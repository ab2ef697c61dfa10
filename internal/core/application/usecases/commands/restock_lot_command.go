package commands

import (
	"errors"

	"aquaflow/internal/core/domain/model/kernel"
	"aquaflow/internal/pkg/guard"
)

var (
	ErrRestockLotCommandIsNotConstructed = errors.New(
		"RestockLotCommand must be created via NewRestockLotCommand constructor",
	)
	ErrRestockQuantityIsInvalid = errors.New("restock quantity must be greater than 0")
)

// RestockLotCommand represents an inbound inventory movement from production
// into a lot.
type RestockLotCommand struct { //nolint:recvcheck //using for validation
	lotID    kernel.UUID
	quantity int

	guard guard.ConstructorGuard
}

// NewRestockLotCommand creates a command to add stock to a lot.
func NewRestockLotCommand(lotID kernel.UUID, quantity int) (RestockLotCommand, error) {
	cmd := RestockLotCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLotID(lotID),
		cmd.setQuantity(quantity),
	); err != nil {
		return RestockLotCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RestockLotCommand) Validate() error {
	return c.guard.Validate(ErrRestockLotCommandIsNotConstructed)
}

// LotID returns the lot receiving stock.
func (c RestockLotCommand) LotID() kernel.UUID {
	return c.lotID
}

// Quantity returns the number of units received.
func (c RestockLotCommand) Quantity() int {
	return c.quantity
}

func (c *RestockLotCommand) setLotID(lotID kernel.UUID) error {
	if err := lotID.Validate(); err != nil {
		return err
	}

	c.lotID = lotID
	return nil
}

func (c *RestockLotCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrRestockQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
