package services

import (
	"errors"
	"time"

	"aquaflow/internal/core/domain/model/delivery"
	"aquaflow/internal/core/domain/model/kernel"
	"aquaflow/internal/core/domain/model/order"
	"aquaflow/internal/core/domain/model/staff"
	"aquaflow/internal/pkg/errs"
)

// ErrCourierUnavailable is returned when the candidate courier cannot be
// dispatched, either because they are already on a trip or were marked off
// the dispatch pool.
var ErrCourierUnavailable = errors.New("courier is not available for dispatch")

// SchedulingPolicy holds the tunable knobs of departure planning. Large
// orders get a shorter lead because loading starts immediately; smaller
// orders wait for the next regular slot.
type SchedulingPolicy struct {
	// LargeBatchThreshold is the package count at or above which an order
	// counts as a large batch.
	LargeBatchThreshold int
	// LargeBatchLead is the time between confirmation and departure for
	// large batches.
	LargeBatchLead time.Duration
	// StandardLead is the departure lead for everything else.
	StandardLead time.Duration
}

// DefaultSchedulingPolicy returns the production defaults: orders of 20
// packages or more depart in 15 minutes, smaller orders in 30.
func DefaultSchedulingPolicy() SchedulingPolicy {
	return SchedulingPolicy{
		LargeBatchThreshold: 20,
		LargeBatchLead:      15 * time.Minute,
		StandardLead:        30 * time.Minute,
	}
}

// Validate rejects policies that would plan departures in the past or treat
// every order as large.
func (p SchedulingPolicy) Validate() error {
	if p.LargeBatchThreshold <= 0 {
		return errs.NewValueIsRequiredError("large batch threshold")
	}
	if p.LargeBatchLead <= 0 {
		return errs.NewValueIsRequiredError("large batch lead")
	}
	if p.StandardLead <= 0 {
		return errs.NewValueIsRequiredError("standard lead")
	}
	return nil
}

// DeliveryScheduler is a domain service that plans the trip for an order
// during confirmation. It computes the departure instant from the order's
// package count, derives the arrival estimate from the travel time supplied
// by the routing adapter, and takes the courier off the dispatch pool.
//
// The scheduler mutates the courier but not the order: confirming the order
// and persisting both is the caller's transaction.
type DeliveryScheduler struct {
	policy SchedulingPolicy
}

// NewDeliveryScheduler creates a scheduler with the given policy.
func NewDeliveryScheduler(policy SchedulingPolicy) (DeliveryScheduler, error) {
	if err := policy.Validate(); err != nil {
		return DeliveryScheduler{}, err
	}
	return DeliveryScheduler{policy: policy}, nil
}

// Policy returns the scheduler's active policy.
func (s DeliveryScheduler) Policy() SchedulingPolicy {
	return s.policy
}

// DepartureLead returns the confirmation-to-departure lead for the given
// package count.
func (s DeliveryScheduler) DepartureLead(packageCount int) time.Duration {
	if packageCount >= s.policy.LargeBatchThreshold {
		return s.policy.LargeBatchLead
	}
	return s.policy.StandardLead
}

// Schedule builds the delivery for an order being confirmed.
//
// The departure is now plus the lead for the order's package count; the
// arrival estimate is departure plus travelTime. The courier is marked
// unavailable on success. Returns ErrCourierUnavailable when the courier
// cannot be dispatched.
func (s DeliveryScheduler) Schedule(
	o *order.Order,
	courier *staff.Employee,
	travelTime time.Duration,
	now time.Time,
) (*delivery.Delivery, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := courier.Validate(); err != nil {
		return nil, err
	}
	if !courier.IsAvailable() {
		return nil, ErrCourierUnavailable
	}
	if travelTime < 0 {
		return nil, errs.NewValueIsInvalidError("travel time")
	}

	departure := now.Add(s.DepartureLead(o.PackageCount()))
	arrival := departure.Add(travelTime)

	trip, err := delivery.NewDelivery(kernel.NewUUID(), o.ID(), courier.ID(), departure, arrival)
	if err != nil {
		return nil, err
	}

	courier.MarkUnavailable()
	return trip, nil
}
