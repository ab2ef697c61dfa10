package commands

import (
	"errors"
	"time"

	"aquaflow/internal/pkg/guard"
)

var ErrMarkDelayedDeliveriesCommandIsNotConstructed = errors.New(
	"MarkDelayedDeliveriesCommand must be created via NewMarkDelayedDeliveriesCommand constructor",
)

// MarkDelayedDeliveriesCommand represents a sweep over active trips: every
// en-route delivery past its arrival estimate is marked delayed.
type MarkDelayedDeliveriesCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

// NewMarkDelayedDeliveriesCommand creates a command to flag overdue trips.
// now is the reference instant arrival estimates are compared against.
func NewMarkDelayedDeliveriesCommand(now time.Time) MarkDelayedDeliveriesCommand {
	return MarkDelayedDeliveriesCommand{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c MarkDelayedDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrMarkDelayedDeliveriesCommandIsNotConstructed)
}

// Now returns the reference instant for the sweep.
func (c MarkDelayedDeliveriesCommand) Now() time.Time {
	return c.now
}
