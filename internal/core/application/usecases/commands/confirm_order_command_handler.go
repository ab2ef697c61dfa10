package commands

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"aquaflow/internal/core/domain/model/inventory"
	"aquaflow/internal/core/domain/model/kernel"
	"aquaflow/internal/core/domain/model/order"
	"aquaflow/internal/core/domain/services"
	"aquaflow/internal/core/ports"
	"aquaflow/internal/pkg/errs"
)

var (
	ErrInvalidConfirmationToken = errors.New("confirmation token is invalid")
	ErrOrderNotFound            = errors.New("order not found")
	ErrOrderIsNotPending        = errors.New("order is not pending")
	ErrInsufficientStock        = errors.New("insufficient stock")
	ErrRoutingUnavailable       = errors.New("routing collaborator unavailable")
	ErrNoCourierAvailable       = errors.New("no courier available")
)

// InsufficientStockError reports which product could not be covered. It wraps
// ErrInsufficientStock so callers can branch on the class while error bodies
// name the product.
type InsufficientStockError struct {
	ProductName string
	Available   int
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %q: have %d, need %d",
		e.ProductName, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// ConfirmOrderCommandHandler executes the order confirmation workflow: the
// point where a paid order turns into decremented stock and a scheduled trip.
//
// Everything happens in one transaction under pessimistic locks. The order
// row is locked first, then the lots for its products in ascending
// product-id order; every concurrent confirmation acquires locks in that
// same sequence. Stock is verified for the combined demand of every product
// before any decrement, so a shortage anywhere leaves every lot untouched. Scheduling runs
// inside the same transaction: if the routing collaborator fails or no
// courier is free, the stock decrement and status change roll back with it.
//
// When the database aborts the transaction with a deadlock or serialization
// failure the handler retries from scratch, up to maxAttempts times.
type ConfirmOrderCommandHandler struct {
	uowFactory       ConfirmOrderUoWFactory
	routes           ports.RouteEstimator
	scheduler        services.DeliveryScheduler
	warehouseAddress kernel.Address
	confirmToken     string
	maxAttempts      int
}

// NewConfirmOrderCommandHandler creates the confirmation handler.
// maxAttempts bounds deadlock retries and must be at least 1.
func NewConfirmOrderCommandHandler(
	uowFactory ConfirmOrderUoWFactory,
	routes ports.RouteEstimator,
	scheduler services.DeliveryScheduler,
	warehouseAddress kernel.Address,
	confirmToken string,
	maxAttempts int,
) (ConfirmOrderCommandHandler, error) {
	if routes == nil {
		return ConfirmOrderCommandHandler{}, errs.NewValueIsRequiredError("routes")
	}
	if err := warehouseAddress.Validate(); err != nil {
		return ConfirmOrderCommandHandler{}, err
	}
	if confirmToken == "" {
		return ConfirmOrderCommandHandler{}, errs.NewValueIsRequiredError("confirm token")
	}
	if maxAttempts < 1 {
		return ConfirmOrderCommandHandler{}, errs.NewValueIsInvalidError("max attempts")
	}

	return ConfirmOrderCommandHandler{
		uowFactory:       uowFactory,
		routes:           routes,
		scheduler:        scheduler,
		warehouseAddress: warehouseAddress,
		confirmToken:     confirmToken,
		maxAttempts:      maxAttempts,
	}, nil
}

// Handle processes the confirmation command.
//
// Returns ErrInvalidConfirmationToken when the presented secret does not
// match, ErrOrderNotFound for unknown orders, ErrOrderIsNotPending when the
// order was already confirmed or cancelled, an InsufficientStockError naming
// the first product that cannot be covered, ErrRoutingUnavailable when the
// ETA collaborator fails, and ErrNoCourierAvailable when nobody is free to
// drive. Transient database aborts are retried up to the configured bound
// before surfacing.
func (h ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if subtle.ConstantTimeCompare([]byte(cmd.PresentedToken()), []byte(h.confirmToken)) != 1 {
		return ErrInvalidConfirmationToken
	}

	var err error
	for attempt := 0; attempt < h.maxAttempts; attempt++ {
		err = h.confirmOnce(ctx, cmd)
		if !errors.Is(err, errs.ErrTransient) {
			return err
		}
	}

	return err
}

func (h ConfirmOrderCommandHandler) confirmOnce(ctx context.Context, cmd ConfirmOrderCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	inventoryRepo := uow.InventoryRepository()

	// Order row first, lots after: the fixed lock order shared by every
	// confirmation.
	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	if aggregate.Status() != order.Pending {
		return ErrOrderIsNotPending
	}

	// Demand is aggregated per product first: an order may carry several
	// lines of the same product, and verification has to see the combined
	// quantity.
	type productDemand struct {
		productName string
		quantity    int
	}
	lines := aggregate.Lines()
	demand := make(map[kernel.UUID]*productDemand, len(lines))
	productIDs := make([]kernel.UUID, 0, len(lines))
	for _, line := range lines {
		if d, ok := demand[line.ProductID()]; ok {
			d.quantity += line.Quantity()
			continue
		}
		demand[line.ProductID()] = &productDemand{
			productName: line.ProductName(),
			quantity:    line.Quantity(),
		}
		productIDs = append(productIDs, line.ProductID())
	}

	lots, err := inventoryRepo.GetForUpdateByProductIDs(ctx, productIDs)
	if err != nil {
		return err
	}

	lotsByProduct := make(map[kernel.UUID]*inventory.Lot, len(lots))
	for _, lot := range lots {
		lotsByProduct[lot.ProductID()] = lot
	}

	// Verify the full demand of every product before decrementing any lot.
	for _, productID := range productIDs {
		d := demand[productID]
		lot := lotsByProduct[productID]
		if lot == nil || !lot.CanCover(d.quantity) {
			available := 0
			if lot != nil {
				available = lot.Quantity()
			}
			return &InsufficientStockError{
				ProductName: d.productName,
				Available:   available,
				Requested:   d.quantity,
			}
		}
	}

	for _, productID := range productIDs {
		if err = lotsByProduct[productID].Decrement(demand[productID].quantity); err != nil {
			return err
		}
	}

	if err = aggregate.Confirm(); err != nil {
		return err
	}

	employeeRepo := uow.EmployeeRepository()
	courier, err := employeeRepo.GetFirstAvailableForUpdate(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoCourierAvailable
	}
	if err != nil {
		return err
	}

	// The estimate is requested for the current instant, not the planned
	// departure time.
	now := time.Now()
	travelTime, err := h.routes.EstimateTravelTime(ctx, h.warehouseAddress, aggregate.ShippingAddress(), now)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRoutingUnavailable, err)
	}

	trip, err := h.scheduler.Schedule(aggregate, courier, travelTime, now)
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	for _, lot := range lots {
		if err = inventoryRepo.Update(ctx, lot); err != nil {
			return err
		}
	}

	if err = employeeRepo.Update(ctx, courier); err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Add(ctx, trip); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
