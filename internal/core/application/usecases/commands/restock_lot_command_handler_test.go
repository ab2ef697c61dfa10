package commands_test

import (
	"testing"

	"aquaflow/internal/core/application/usecases/commands"
	"aquaflow/internal/core/domain/model/inventory"
	"aquaflow/internal/core/domain/model/kernel"
	"aquaflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRestockLotCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	lot, err := inventory.NewLot(kernel.NewUUID(), kernel.NewUUID(), "L-2026-081", 8, 10, 5, nil)
	require.NoError(t, err)

	cmd, err := commands.NewRestockLotCommand(lot.ID(), 50)
	require.NoError(t, err)

	inventoryRepo := new(MockInventoryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InventoryRepository").Return(inventoryRepo).Once(),
		inventoryRepo.On("Get", ctx, lot.ID()).Return(lot, nil).Once(),
		inventoryRepo.On("Update", ctx, mock.AnythingOfType("*inventory.Lot")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInventoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRestockLotCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 58, lot.Quantity())
	inventoryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRestockLotCommandHandler_Handle_LotNotFound(t *testing.T) {
	ctx := t.Context()
	lotID := kernel.NewUUID()

	cmd, err := commands.NewRestockLotCommand(lotID, 10)
	require.NoError(t, err)

	inventoryRepo := new(MockInventoryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InventoryRepository").Return(inventoryRepo).Once(),
		inventoryRepo.On("Get", ctx, lotID).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInventoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRestockLotCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrLotNotFound)
}

func TestNewRestockLotCommand_InvalidQuantity(t *testing.T) {
	_, err := commands.NewRestockLotCommand(kernel.NewUUID(), 0)
	require.ErrorIs(t, err, commands.ErrRestockQuantityIsInvalid)
}
