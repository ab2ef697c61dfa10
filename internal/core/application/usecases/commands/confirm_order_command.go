package commands

import (
	"errors"

	"aquaflow/internal/core/domain/model/kernel"
	"aquaflow/internal/pkg/guard"
)

var (
	ErrConfirmOrderCommandIsNotConstructed = errors.New(
		"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
	)
	ErrConfirmationTokenIsRequired = errors.New("confirmation token is required")
)

// ConfirmOrderCommand represents a payment-provider callback asking to
// confirm a pending order. The presented token is the shared secret carried
// by the callback; the handler compares it against the configured value.
//
// Example:
//
//	cmd, err := NewConfirmOrderCommand(orderID, presentedToken)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrInvalidConfirmationToken):
//	    // 403
//	case errors.Is(err, ErrOrderNotFound):
//	    // 404
//	case errors.Is(err, ErrInsufficientStock):
//	    // 400, body names the product
//	}
type ConfirmOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	presentedToken string

	guard guard.ConstructorGuard
}

// NewConfirmOrderCommand creates a command to confirm a pending order.
func NewConfirmOrderCommand(orderID kernel.UUID, presentedToken string) (ConfirmOrderCommand, error) {
	cmd := ConfirmOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPresentedToken(presentedToken),
	); err != nil {
		return ConfirmOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

// OrderID returns the order to confirm.
func (c ConfirmOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PresentedToken returns the shared secret carried by the callback.
func (c ConfirmOrderCommand) PresentedToken() string {
	return c.presentedToken
}

func (c *ConfirmOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ConfirmOrderCommand) setPresentedToken(presentedToken string) error {
	if presentedToken == "" {
		return ErrConfirmationTokenIsRequired
	}

	c.presentedToken = presentedToken
	return nil
}
