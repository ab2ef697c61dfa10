package commands

import (
	"context"

	"aquaflow/internal/core/domain/model/delivery"
)

// MarkDelayedDeliveriesCommandHandler flags overdue trips so dispatchers see
// them in the active deliveries view. Runs periodically from the job manager.
type MarkDelayedDeliveriesCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewMarkDelayedDeliveriesCommandHandler creates a handler for the delay sweep.
func NewMarkDelayedDeliveriesCommandHandler(uowFactory DeliveryUoWFactory) MarkDelayedDeliveriesCommandHandler {
	return MarkDelayedDeliveriesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle marks every en-route delivery past its arrival estimate as delayed.
// Returns the number of trips flagged.
func (h MarkDelayedDeliveriesCommandHandler) Handle(ctx context.Context, cmd MarkDelayedDeliveriesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()

	active, err := deliveryRepo.GetAllActive(ctx)
	if err != nil {
		return 0, err
	}

	delayed := 0
	for _, trip := range active {
		if trip.Status() != delivery.EnRoute {
			continue
		}
		if !trip.EstimatedArrival().Before(cmd.Now()) {
			continue
		}

		if err = trip.MarkDelayed(); err != nil {
			return 0, err
		}
		if err = deliveryRepo.Update(ctx, trip); err != nil {
			return 0, err
		}
		delayed++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return delayed, nil
}
