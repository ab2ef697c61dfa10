package order

import (
	"fmt"

	"aquaflow/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──┬──> Confirmed ──> Delivered
//	          │
//	          └──> Cancelled
//
// Confirmed is reached exactly once, through the confirmation workflow;
// Cancelled and Delivered are final.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial state: the order is registered but unpaid,
	// and no stock has been reserved for it.
	Pending

	// Confirmed means payment was accepted, stock was decremented and a
	// delivery exists for the order.
	Confirmed

	// Cancelled is a final state reached from Pending only.
	Cancelled

	// Delivered is a final state reached from Confirmed when the courier
	// completes the trip.
	Delivered
)

func statusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Cancelled: "Cancelled",
		Delivered: "Delivered",
	}
}

func validStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Cancelled: "Cancelled",
		Delivered: "Delivered",
	}
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := validStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer; invalid values print as "Unknown".
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Confirm transitions Pending to Confirmed.
func (s Status) Confirm() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to confirm", s))
	}
	return Confirmed, nil
}

// Cancel transitions Pending to Cancelled.
func (s Status) Cancel() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s))
	}
	return Cancelled, nil
}

// Deliver transitions Confirmed to Delivered.
func (s Status) Deliver() (Status, error) {
	if s != Confirmed {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s))
	}
	return Delivered, nil
}
