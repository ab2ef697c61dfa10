package delivery

import (
	"fmt"

	"aquaflow/internal/pkg/errs"
)

// Status is the lifecycle state of a delivery trip.
//
// State transitions:
//
//	EnRoute ──┬──> Delivered
//	          ├──> Delayed ──> Delivered
//	          └──> Cancelled
//
// Delivered and Cancelled are final; Delayed may still complete.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// EnRoute is the initial state set by the confirmation workflow.
	EnRoute

	// Delivered means the courier completed the trip.
	Delivered

	// Delayed means the trip missed its arrival estimate but is still active.
	Delayed

	// Cancelled means the trip was aborted.
	Cancelled
)

func statusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		EnRoute:   "EnRoute",
		Delivered: "Delivered",
		Delayed:   "Delayed",
		Cancelled: "Cancelled",
	}
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	if _, ok := statusStrings()[s]; !ok {
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

// Complete transitions an active trip (EnRoute or Delayed) to Delivered.
func (s Status) Complete() (Status, error) {
	if s != EnRoute && s != Delayed {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s))
	}
	return Delivered, nil
}

// Delay transitions EnRoute to Delayed.
func (s Status) Delay() (Status, error) {
	if s != EnRoute {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to delay", s))
	}
	return Delayed, nil
}

// Cancel transitions an active trip (EnRoute or Delayed) to Cancelled.
func (s Status) Cancel() (Status, error) {
	if s != EnRoute && s != Delayed {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s))
	}
	return Cancelled, nil
}
