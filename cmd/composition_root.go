package cmd

import (
	"aquaflow/internal/adapters/out/postgres"
	"aquaflow/internal/adapters/out/routing"
	"aquaflow/internal/core/application/usecases/commands"
	"aquaflow/internal/core/application/usecases/queries"
	"aquaflow/internal/core/domain/model/kernel"
	"aquaflow/internal/core/domain/services"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into command and query handlers. Each
// Create* method returns a ready handler; the per-command UoW factory
// adapters narrow the GORM unit of work to the interface the handler needs.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

// NewCompositionRoot creates the composition root over an open database
// connection.
func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

// CreateCreateOrderCommandHandler builds the order creation handler.
func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

// CreateConfirmOrderCommandHandler builds the confirmation handler with its
// routing client, scheduling policy, and retry bound.
func (c *CompositionRoot) CreateConfirmOrderCommandHandler() (commands.ConfirmOrderCommandHandler, error) {
	routes, err := routing.NewClient(c.config.RoutingBaseURL, c.config.RoutingAPIKey, c.config.RoutingTimeout)
	if err != nil {
		return commands.ConfirmOrderCommandHandler{}, err
	}

	scheduler, err := services.NewDeliveryScheduler(services.SchedulingPolicy{
		LargeBatchThreshold: c.config.LargeBatchThreshold,
		LargeBatchLead:      c.config.LargeBatchLead,
		StandardLead:        c.config.StandardLead,
	})
	if err != nil {
		return commands.ConfirmOrderCommandHandler{}, err
	}

	warehouse, err := kernel.NewAddress(c.config.WarehouseAddress)
	if err != nil {
		return commands.ConfirmOrderCommandHandler{}, err
	}

	var f commands.ConfirmOrderUoWFactory = FuncConfirmOrderUoWFactory(func() commands.ConfirmOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmOrderCommandHandler(
		f,
		routes,
		scheduler,
		warehouse,
		c.config.ConfirmToken,
		c.config.ConfirmMaxAttempts,
	)
}

// CreateCancelOrderCommandHandler builds the cancellation handler.
func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

// CreateCompleteDeliveryCommandHandler builds the trip completion handler.
func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	var f commands.CompleteDeliveryUoWFactory = FuncCompleteDeliveryUoWFactory(func() commands.CompleteDeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteDeliveryCommandHandler(f)
}

// CreateRegisterEmployeeCommandHandler builds the employee registration handler.
func (c *CompositionRoot) CreateRegisterEmployeeCommandHandler() commands.RegisterEmployeeCommandHandler {
	var f commands.StaffUoWFactory = FuncStaffUoWFactory(func() commands.StaffUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterEmployeeCommandHandler(f)
}

// CreateSetPrincipalRoleCommandHandler builds the principal role handler.
func (c *CompositionRoot) CreateSetPrincipalRoleCommandHandler() commands.SetPrincipalRoleCommandHandler {
	var f commands.StaffUoWFactory = FuncStaffUoWFactory(func() commands.StaffUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetPrincipalRoleCommandHandler(f)
}

// CreateRestockLotCommandHandler builds the restock handler.
func (c *CompositionRoot) CreateRestockLotCommandHandler() commands.RestockLotCommandHandler {
	var f commands.InventoryUoWFactory = FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRestockLotCommandHandler(f)
}

// CreateMarkDelayedDeliveriesCommandHandler builds the delay sweep handler.
func (c *CompositionRoot) CreateMarkDelayedDeliveriesCommandHandler() commands.MarkDelayedDeliveriesCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkDelayedDeliveriesCommandHandler(f)
}

// CreateGetPendingOrdersQueryHandler builds the pending orders query handler.
func (c *CompositionRoot) CreateGetPendingOrdersQueryHandler() queries.GetPendingOrdersQueryHandler {
	return queries.NewGetPendingOrdersQueryHandler(c.gormDB)
}

// CreateGetLowStockLotsQueryHandler builds the low stock query handler.
func (c *CompositionRoot) CreateGetLowStockLotsQueryHandler() queries.GetLowStockLotsQueryHandler {
	return queries.NewGetLowStockLotsQueryHandler(c.gormDB)
}

// CreateGetActiveDeliveriesQueryHandler builds the active deliveries query handler.
func (c *CompositionRoot) CreateGetActiveDeliveriesQueryHandler() queries.GetActiveDeliveriesQueryHandler {
	return queries.NewGetActiveDeliveriesQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncConfirmOrderUoWFactory func() commands.ConfirmOrderUoW

func (f FuncConfirmOrderUoWFactory) Create() commands.ConfirmOrderUoW {
	return f()
}

type FuncCompleteDeliveryUoWFactory func() commands.CompleteDeliveryUoW

func (f FuncCompleteDeliveryUoWFactory) Create() commands.CompleteDeliveryUoW {
	return f()
}

type FuncStaffUoWFactory func() commands.StaffUoW

func (f FuncStaffUoWFactory) Create() commands.StaffUoW {
	return f()
}

type FuncInventoryUoWFactory func() commands.InventoryUoW

func (f FuncInventoryUoWFactory) Create() commands.InventoryUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}
