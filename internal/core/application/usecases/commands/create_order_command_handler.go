package commands

import (
	"context"
	"errors"
	"time"

	"aquaflow/internal/core/domain/model/kernel"
	"aquaflow/internal/core/domain/model/order"
	"aquaflow/internal/pkg/errs"
)

var (
	ErrUnknownProduct    = errors.New("unknown product")
	ErrProductIsInactive = errors.New("product is not sellable")
)

// CreateOrderCommandHandler handles order placement. It snapshots catalog
// prices into the order lines and takes an advisory look at stock so callers
// learn about shortages early. The advisory check takes no locks; the
// authoritative check happens at confirmation.
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(uowFactory CreateOrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
// Builds a pending order with price snapshots taken from the catalog.
// Returns ErrUnknownProduct for lines naming products that do not exist,
// ErrProductIsInactive for deactivated ones, and an InsufficientStockError
// when the advisory stock check already shows a shortage.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	address, err := kernel.NewAddress(cmd.ShippingAddress())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	inventoryRepo := uow.InventoryRepository()

	lines := make([]order.Line, 0, len(cmd.Lines()))
	for _, input := range cmd.Lines() {
		p, err := productRepo.Get(ctx, input.ProductID)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ErrUnknownProduct
		}
		if err != nil {
			return err
		}
		if !p.IsActive() {
			return ErrProductIsInactive
		}

		lot, err := inventoryRepo.GetByProductID(ctx, input.ProductID)
		if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}
		if err != nil || !lot.CanCover(input.Quantity) {
			available := 0
			if lot != nil {
				available = lot.Quantity()
			}
			return &InsufficientStockError{
				ProductName: p.Name(),
				Available:   available,
				Requested:   input.Quantity,
			}
		}

		line, err := order.NewLine(p.ID(), p.Name(), input.Quantity, p.UnitPrice())
		if err != nil {
			return err
		}
		lines = append(lines, line)
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), address, lines, cmd.Comments(), time.Now())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
