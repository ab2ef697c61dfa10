package commands

import (
	"context"
	"errors"

	"aquaflow/internal/pkg/errs"
)

var ErrLotNotFound = errors.New("lot not found")

// RestockLotCommandHandler handles inbound inventory movements.
type RestockLotCommandHandler struct {
	uowFactory InventoryUoWFactory
}

// NewRestockLotCommandHandler creates a handler for lot restocking.
func NewRestockLotCommandHandler(uowFactory InventoryUoWFactory) RestockLotCommandHandler {
	return RestockLotCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the restock command.
// Returns ErrLotNotFound for unknown lots.
func (h RestockLotCommandHandler) Handle(ctx context.Context, cmd RestockLotCommand) error {
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

	inventoryRepo := uow.InventoryRepository()

	lot, err := inventoryRepo.Get(ctx, cmd.LotID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrLotNotFound
	}
	if err != nil {
		return err
	}

	if err = lot.Restock(cmd.Quantity()); err != nil {
		return err
	}

	if err = inventoryRepo.Update(ctx, lot); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
