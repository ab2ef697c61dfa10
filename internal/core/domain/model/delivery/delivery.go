package delivery

import (
	"errors"
	"fmt"
	"time"

	"aquaflow/internal/core/domain/model/kernel"
	"aquaflow/internal/pkg/errs"
	"aquaflow/internal/pkg/guard"
)

var (
	// ErrDeliveryIsNotConstructed is returned when using a Delivery that bypassed its constructors.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")
)

// Delivery is the scheduled trip for one confirmed order. Exactly one
// delivery exists per confirmed order; it is created inside the confirmation
// transaction and never before.
type Delivery struct {
	id               kernel.UUID
	orderID          kernel.UUID
	courierID        kernel.UUID
	departureAt      time.Time
	estimatedArrival time.Time
	status           Status
	guard            guard.ConstructorGuard
}

// NewDelivery creates an en-route delivery. The estimated arrival must not
// precede the departure.
func NewDelivery(id, orderID, courierID kernel.UUID, departureAt, estimatedArrival time.Time) (*Delivery, error) {
	d := &Delivery{
		status: EnRoute,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setCourierID(courierID),
		d.setWindow(departureAt, estimatedArrival),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery rebuilds a delivery from persistence with its stored status.
func RestoreDelivery(id, orderID, courierID kernel.UUID, departureAt, estimatedArrival time.Time, status Status) (*Delivery, error) {
	d, err := NewDelivery(id, orderID, courierID, departureAt, estimatedArrival)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	d.status = status
	return d, nil
}

// Validate ensures the delivery came from a constructor.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// ID returns the delivery identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// OrderID returns the confirmed order this trip serves.
func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

// CourierID returns the assigned courier.
func (d *Delivery) CourierID() kernel.UUID {
	return d.courierID
}

// DepartureAt returns the planned departure instant.
func (d *Delivery) DepartureAt() time.Time {
	return d.departureAt
}

// EstimatedArrival returns departure plus the estimated travel duration.
func (d *Delivery) EstimatedArrival() time.Time {
	return d.estimatedArrival
}

// Status returns the current trip state.
func (d *Delivery) Status() Status {
	return d.status
}

// Complete marks the trip delivered.
func (d *Delivery) Complete() error {
	newStatus, err := d.status.Complete()
	if err != nil {
		return err
	}
	d.status = newStatus
	return nil
}

// MarkDelayed flags a trip that missed its arrival estimate.
func (d *Delivery) MarkDelayed() error {
	newStatus, err := d.status.Delay()
	if err != nil {
		return err
	}
	d.status = newStatus
	return nil
}

// Cancel aborts an active trip.
func (d *Delivery) Cancel() error {
	newStatus, err := d.status.Cancel()
	if err != nil {
		return err
	}
	d.status = newStatus
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	d.orderID = id
	return nil
}

func (d *Delivery) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("courier id", err)
	}
	d.courierID = id
	return nil
}

func (d *Delivery) setWindow(departureAt, estimatedArrival time.Time) error {
	if departureAt.IsZero() {
		return errs.NewValueIsRequiredError("departure time")
	}
	if estimatedArrival.Before(departureAt) {
		return errs.NewValueIsInvalidErrorWithCause("estimated arrival",
			fmt.Errorf("arrival %s precedes departure %s", estimatedArrival, departureAt))
	}
	d.departureAt = departureAt
	d.estimatedArrival = estimatedArrival
	return nil
}
