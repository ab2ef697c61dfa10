package commands

import (
	"context"
	"errors"

	"aquaflow/internal/pkg/errs"
)

var ErrDeliveryNotFound = errors.New("delivery not found")

// CompleteDeliveryCommandHandler handles trip completion: the delivery and
// its order both become Delivered and the courier returns to the dispatch
// pool, all in one transaction.
type CompleteDeliveryCommandHandler struct {
	uowFactory CompleteDeliveryUoWFactory
}

// NewCompleteDeliveryCommandHandler creates a handler for trip completion.
func NewCompleteDeliveryCommandHandler(uowFactory CompleteDeliveryUoWFactory) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the trip completion command.
// Returns ErrDeliveryNotFound for unknown trips. Completing an already
// delivered or cancelled trip fails with the delivery's transition error.
func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	orderRepo := uow.OrderRepository()
	employeeRepo := uow.EmployeeRepository()

	trip, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrDeliveryNotFound
	}
	if err != nil {
		return err
	}

	if err = trip.Complete(); err != nil {
		return err
	}

	aggregate, err := orderRepo.Get(ctx, trip.OrderID())
	if err != nil {
		return err
	}
	if err = aggregate.MarkDelivered(); err != nil {
		return err
	}

	courier, err := employeeRepo.Get(ctx, trip.CourierID())
	if err != nil {
		return err
	}
	courier.MarkAvailable()

	if err = deliveryRepo.Update(ctx, trip); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = employeeRepo.Update(ctx, courier); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
