package commands_test

import (
	"errors"
	"testing"
	"time"

	"aquaflow/internal/core/application/usecases/commands"
	"aquaflow/internal/core/domain/model/delivery"
	"aquaflow/internal/core/domain/model/inventory"
	"aquaflow/internal/core/domain/model/kernel"
	"aquaflow/internal/core/domain/model/order"
	"aquaflow/internal/core/domain/model/staff"
	"aquaflow/internal/core/domain/services"
	"aquaflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const confirmTestToken = "shared-secret"

type confirmFixture struct {
	productID kernel.UUID
	order     *order.Order
	lot       *inventory.Lot
	courier   *staff.Employee

	orderRepo     *MockOrderRepository
	inventoryRepo *MockInventoryRepository
	deliveryRepo  *MockDeliveryRepository
	employeeRepo  *MockEmployeeRepository
	routes        *MockRouteEstimator
	uow           *MockUoW
	factory       *MockConfirmOrderUoWFactory
}

func newConfirmFixture(t *testing.T, stock, requested int) *confirmFixture {
	t.Helper()

	productID := kernel.NewUUID()
	price, err := kernel.NewMoney(150)
	require.NoError(t, err)
	line, err := order.NewLine(productID, "Agua 625ml", requested, price)
	require.NoError(t, err)
	addr, err := kernel.NewAddress("Av. Los Alamos 742")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), addr, []order.Line{line}, "", time.Now())
	require.NoError(t, err)

	lot, err := inventory.NewLot(kernel.NewUUID(), productID, "L-2026-081", stock, 10, 5, nil)
	require.NoError(t, err)

	courier, err := staff.NewEmployee(kernel.NewUUID(), "Jorge Mamani", "")
	require.NoError(t, err)

	return &confirmFixture{
		productID:     productID,
		order:         o,
		lot:           lot,
		courier:       courier,
		orderRepo:     new(MockOrderRepository),
		inventoryRepo: new(MockInventoryRepository),
		deliveryRepo:  new(MockDeliveryRepository),
		employeeRepo:  new(MockEmployeeRepository),
		routes:        new(MockRouteEstimator),
		uow:           new(MockUoW),
		factory:       new(MockConfirmOrderUoWFactory),
	}
}

func (f *confirmFixture) handler(t *testing.T, maxAttempts int) commands.ConfirmOrderCommandHandler {
	t.Helper()

	scheduler, err := services.NewDeliveryScheduler(services.DefaultSchedulingPolicy())
	require.NoError(t, err)
	warehouse, err := kernel.NewAddress("Parque Industrial Mz. C Lt. 4")
	require.NoError(t, err)

	handler, err := commands.NewConfirmOrderCommandHandler(
		f.factory, f.routes, scheduler, warehouse, confirmTestToken, maxAttempts)
	require.NoError(t, err)
	return handler
}

func (f *confirmFixture) command(t *testing.T, token string) commands.ConfirmOrderCommand {
	t.Helper()
	cmd, err := commands.NewConfirmOrderCommand(f.order.ID(), token)
	require.NoError(t, err)
	return cmd
}

func (f *confirmFixture) assertExpectations(t *testing.T) {
	t.Helper()
	f.orderRepo.AssertExpectations(t)
	f.inventoryRepo.AssertExpectations(t)
	f.deliveryRepo.AssertExpectations(t)
	f.employeeRepo.AssertExpectations(t)
	f.routes.AssertExpectations(t)
	f.uow.AssertExpectations(t)
	f.factory.AssertExpectations(t)
}

func TestConfirmOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	f := newConfirmFixture(t, 25, 20)

	mock.InOrder(
		f.factory.On("Create").Return(f.uow).Once(),
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("OrderRepository").Return(f.orderRepo).Once(),
		f.uow.On("InventoryRepository").Return(f.inventoryRepo).Once(),
		f.orderRepo.On("GetForUpdate", ctx, f.order.ID()).Return(f.order, nil).Once(),
		f.inventoryRepo.On("GetForUpdateByProductIDs", ctx, []kernel.UUID{f.productID}).
			Return([]*inventory.Lot{f.lot}, nil).Once(),
		f.uow.On("EmployeeRepository").Return(f.employeeRepo).Once(),
		f.employeeRepo.On("GetFirstAvailableForUpdate", ctx).Return(f.courier, nil).Once(),
		f.routes.On("EstimateTravelTime", ctx, mock.Anything, f.order.ShippingAddress(), mock.Anything).
			Return(25*time.Minute, nil).Once(),
		f.orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		f.inventoryRepo.On("Update", ctx, mock.AnythingOfType("*inventory.Lot")).Return(nil).Once(),
		f.employeeRepo.On("Update", ctx, mock.AnythingOfType("*staff.Employee")).Return(nil).Once(),
		f.uow.On("DeliveryRepository").Return(f.deliveryRepo).Once(),
		f.deliveryRepo.On("Add", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := f.handler(t, 3)
	err := handler.Handle(ctx, f.command(t, confirmTestToken))

	require.NoError(t, err)
	assert.Equal(t, order.Confirmed, f.order.Status())
	assert.Equal(t, 5, f.lot.Quantity())
	assert.False(t, f.courier.IsAvailable())

	addCall := f.deliveryRepo.Calls[0]
	trip := addCall.Arguments[1].(*delivery.Delivery)
	assert.True(t, trip.OrderID().IsEqual(f.order.ID()))
	assert.True(t, trip.CourierID().IsEqual(f.courier.ID()))
	assert.Equal(t, 25*time.Minute, trip.EstimatedArrival().Sub(trip.DepartureAt()))

	// The estimate is requested for the current instant, not the planned
	// departure.
	requestedAt := f.routes.Calls[0].Arguments[3].(time.Time)
	assert.WithinDuration(t, time.Now(), requestedAt, time.Second)
	assert.True(t, requestedAt.Before(trip.DepartureAt()))

	f.assertExpectations(t)
}

func TestConfirmOrderCommandHandler_Handle_InvalidToken(t *testing.T) {
	ctx := t.Context()
	f := newConfirmFixture(t, 25, 20)

	handler := f.handler(t, 3)
	err := handler.Handle(ctx, f.command(t, "wrong-secret"))

	require.ErrorIs(t, err, commands.ErrInvalidConfirmationToken)
	f.factory.AssertNotCalled(t, "Create")
}

func TestConfirmOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	f := newConfirmFixture(t, 25, 20)

	mock.InOrder(
		f.factory.On("Create").Return(f.uow).Once(),
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("OrderRepository").Return(f.orderRepo).Once(),
		f.uow.On("InventoryRepository").Return(f.inventoryRepo).Once(),
		f.orderRepo.On("GetForUpdate", ctx, f.order.ID()).Return(nil, errs.ErrObjectNotFound).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := f.handler(t, 3)
	err := handler.Handle(ctx, f.command(t, confirmTestToken))

	require.ErrorIs(t, err, commands.ErrOrderNotFound)
	f.assertExpectations(t)
}

func TestConfirmOrderCommandHandler_Handle_OrderNotPending(t *testing.T) {
	ctx := t.Context()
	f := newConfirmFixture(t, 25, 20)
	require.NoError(t, f.order.Confirm())

	mock.InOrder(
		f.factory.On("Create").Return(f.uow).Once(),
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("OrderRepository").Return(f.orderRepo).Once(),
		f.uow.On("InventoryRepository").Return(f.inventoryRepo).Once(),
		f.orderRepo.On("GetForUpdate", ctx, f.order.ID()).Return(f.order, nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := f.handler(t, 3)
	err := handler.Handle(ctx, f.command(t, confirmTestToken))

	require.ErrorIs(t, err, commands.ErrOrderIsNotPending)
	f.assertExpectations(t)
}

func TestConfirmOrderCommandHandler_Handle_InsufficientStock(t *testing.T) {
	ctx := t.Context()
	f := newConfirmFixture(t, 25, 30)

	mock.InOrder(
		f.factory.On("Create").Return(f.uow).Once(),
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("OrderRepository").Return(f.orderRepo).Once(),
		f.uow.On("InventoryRepository").Return(f.inventoryRepo).Once(),
		f.orderRepo.On("GetForUpdate", ctx, f.order.ID()).Return(f.order, nil).Once(),
		f.inventoryRepo.On("GetForUpdateByProductIDs", ctx, []kernel.UUID{f.productID}).
			Return([]*inventory.Lot{f.lot}, nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := f.handler(t, 3)
	err := handler.Handle(ctx, f.command(t, confirmTestToken))

	require.ErrorIs(t, err, commands.ErrInsufficientStock)

	var stockErr *commands.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Agua 625ml", stockErr.ProductName)
	assert.Equal(t, 25, stockErr.Available)
	assert.Equal(t, 30, stockErr.Requested)

	assert.Equal(t, 25, f.lot.Quantity(), "no partial decrement")
	assert.Equal(t, order.Pending, f.order.Status())
	f.inventoryRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestConfirmOrderCommandHandler_Handle_CombinedDemandAcrossLines(t *testing.T) {
	ctx := t.Context()
	f := newConfirmFixture(t, 25, 15)

	// Two lines of the same product whose combined demand exceeds the lot.
	price, err := kernel.NewMoney(150)
	require.NoError(t, err)
	first, err := order.NewLine(f.productID, "Agua 625ml", 15, price)
	require.NoError(t, err)
	second, err := order.NewLine(f.productID, "Agua 625ml", 15, price)
	require.NoError(t, err)
	addr, err := kernel.NewAddress("Av. Los Alamos 742")
	require.NoError(t, err)
	f.order, err = order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), addr, []order.Line{first, second}, "", time.Now())
	require.NoError(t, err)

	mock.InOrder(
		f.factory.On("Create").Return(f.uow).Once(),
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("OrderRepository").Return(f.orderRepo).Once(),
		f.uow.On("InventoryRepository").Return(f.inventoryRepo).Once(),
		f.orderRepo.On("GetForUpdate", ctx, f.order.ID()).Return(f.order, nil).Once(),
		f.inventoryRepo.On("GetForUpdateByProductIDs", ctx, []kernel.UUID{f.productID}).
			Return([]*inventory.Lot{f.lot}, nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := f.handler(t, 3)
	err = handler.Handle(ctx, f.command(t, confirmTestToken))

	require.ErrorIs(t, err, commands.ErrInsufficientStock)

	var stockErr *commands.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Agua 625ml", stockErr.ProductName)
	assert.Equal(t, 25, stockErr.Available)
	assert.Equal(t, 30, stockErr.Requested)

	assert.Equal(t, 25, f.lot.Quantity(), "no partial decrement")
	assert.Equal(t, order.Pending, f.order.Status())
	f.assertExpectations(t)
}

func TestConfirmOrderCommandHandler_Handle_NoCourierAvailable(t *testing.T) {
	ctx := t.Context()
	f := newConfirmFixture(t, 25, 20)

	mock.InOrder(
		f.factory.On("Create").Return(f.uow).Once(),
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("OrderRepository").Return(f.orderRepo).Once(),
		f.uow.On("InventoryRepository").Return(f.inventoryRepo).Once(),
		f.orderRepo.On("GetForUpdate", ctx, f.order.ID()).Return(f.order, nil).Once(),
		f.inventoryRepo.On("GetForUpdateByProductIDs", ctx, []kernel.UUID{f.productID}).
			Return([]*inventory.Lot{f.lot}, nil).Once(),
		f.uow.On("EmployeeRepository").Return(f.employeeRepo).Once(),
		f.employeeRepo.On("GetFirstAvailableForUpdate", ctx).Return(nil, errs.ErrObjectNotFound).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := f.handler(t, 3)
	err := handler.Handle(ctx, f.command(t, confirmTestToken))

	require.ErrorIs(t, err, commands.ErrNoCourierAvailable)
	f.assertExpectations(t)
}

func TestConfirmOrderCommandHandler_Handle_RoutingFailureRollsBack(t *testing.T) {
	ctx := t.Context()
	f := newConfirmFixture(t, 25, 20)

	mock.InOrder(
		f.factory.On("Create").Return(f.uow).Once(),
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("OrderRepository").Return(f.orderRepo).Once(),
		f.uow.On("InventoryRepository").Return(f.inventoryRepo).Once(),
		f.orderRepo.On("GetForUpdate", ctx, f.order.ID()).Return(f.order, nil).Once(),
		f.inventoryRepo.On("GetForUpdateByProductIDs", ctx, []kernel.UUID{f.productID}).
			Return([]*inventory.Lot{f.lot}, nil).Once(),
		f.uow.On("EmployeeRepository").Return(f.employeeRepo).Once(),
		f.employeeRepo.On("GetFirstAvailableForUpdate", ctx).Return(f.courier, nil).Once(),
		f.routes.On("EstimateTravelTime", ctx, mock.Anything, f.order.ShippingAddress(), mock.Anything).
			Return(time.Duration(0), errors.New("upstream timeout")).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := f.handler(t, 3)
	err := handler.Handle(ctx, f.command(t, confirmTestToken))

	require.ErrorIs(t, err, commands.ErrRoutingUnavailable)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	f.deliveryRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestConfirmOrderCommandHandler_Handle_RetriesOnTransientFailure(t *testing.T) {
	ctx := t.Context()
	f := newConfirmFixture(t, 25, 20)
	transient := errs.NewTransientError("lock order row", errors.New("deadlock detected"))

	f.factory.On("Create").Return(f.uow).Times(2)
	f.uow.On("Begin", ctx).Return(nil).Times(2)
	f.uow.On("OrderRepository").Return(f.orderRepo).Times(2)
	f.uow.On("InventoryRepository").Return(f.inventoryRepo).Times(2)
	f.uow.On("Rollback", ctx).Return(nil).Times(2)

	f.orderRepo.On("GetForUpdate", ctx, f.order.ID()).Return(nil, transient).Once()
	f.orderRepo.On("GetForUpdate", ctx, f.order.ID()).Return(f.order, nil).Once()

	f.inventoryRepo.On("GetForUpdateByProductIDs", ctx, []kernel.UUID{f.productID}).
		Return([]*inventory.Lot{f.lot}, nil).Once()
	f.uow.On("EmployeeRepository").Return(f.employeeRepo).Once()
	f.employeeRepo.On("GetFirstAvailableForUpdate", ctx).Return(f.courier, nil).Once()
	f.routes.On("EstimateTravelTime", ctx, mock.Anything, f.order.ShippingAddress(), mock.Anything).
		Return(25*time.Minute, nil).Once()
	f.orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	f.inventoryRepo.On("Update", ctx, mock.AnythingOfType("*inventory.Lot")).Return(nil).Once()
	f.employeeRepo.On("Update", ctx, mock.AnythingOfType("*staff.Employee")).Return(nil).Once()
	f.uow.On("DeliveryRepository").Return(f.deliveryRepo).Once()
	f.deliveryRepo.On("Add", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()

	handler := f.handler(t, 3)
	err := handler.Handle(ctx, f.command(t, confirmTestToken))

	require.NoError(t, err)
	f.assertExpectations(t)
}

func TestConfirmOrderCommandHandler_Handle_RetryBoundExhausted(t *testing.T) {
	ctx := t.Context()
	f := newConfirmFixture(t, 25, 20)
	transient := errs.NewTransientError("lock order row", errors.New("deadlock detected"))

	f.factory.On("Create").Return(f.uow).Times(2)
	f.uow.On("Begin", ctx).Return(nil).Times(2)
	f.uow.On("OrderRepository").Return(f.orderRepo).Times(2)
	f.uow.On("InventoryRepository").Return(f.inventoryRepo).Times(2)
	f.orderRepo.On("GetForUpdate", ctx, f.order.ID()).Return(nil, transient).Times(2)
	f.uow.On("Rollback", ctx).Return(nil).Times(2)

	handler := f.handler(t, 2)
	err := handler.Handle(ctx, f.command(t, confirmTestToken))

	require.ErrorIs(t, err, errs.ErrTransient)
	f.assertExpectations(t)
}

func TestConfirmOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	f := newConfirmFixture(t, 25, 20)

	handler := f.handler(t, 3)
	err := handler.Handle(ctx, commands.ConfirmOrderCommand{})

	require.ErrorIs(t, err, commands.ErrConfirmOrderCommandIsNotConstructed)
	f.factory.AssertNotCalled(t, "Create")
}
