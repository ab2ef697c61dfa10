// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"aquaflow/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each command depends on the narrowest unit of work that covers the
// aggregates it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// InventoryRepoFactory provides access to the inventory repository within a transaction.
	InventoryRepoFactory interface {
		InventoryRepository() ports.InventoryRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// EmployeeRepoFactory provides access to the employee repository within a transaction.
	EmployeeRepoFactory interface {
		EmployeeRepository() ports.EmployeeRepository
	}

	// RoleRepoFactory provides access to the role repository within a transaction.
	RoleRepoFactory interface {
		RoleRepository() ports.RoleRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CreateOrderUoW manages transactions for order creation, which reads the
	// catalog and takes an advisory look at stock.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
		InventoryRepoFactory
	}

	// CreateOrderUoWFactory creates new order creation unit of work instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// ConfirmOrderUoW manages the confirmation transaction: order, stock
	// lots, the scheduled delivery, and the dispatched courier all commit or
	// roll back together.
	ConfirmOrderUoW interface {
		TxManager
		OrderRepoFactory
		InventoryRepoFactory
		DeliveryRepoFactory
		EmployeeRepoFactory
	}

	// ConfirmOrderUoWFactory creates new confirmation unit of work instances.
	ConfirmOrderUoWFactory interface {
		Create() ConfirmOrderUoW
	}

	// CompleteDeliveryUoW manages transactions for trip completion, which
	// updates the delivery, the order, and frees the courier.
	CompleteDeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
		OrderRepoFactory
		EmployeeRepoFactory
	}

	// CompleteDeliveryUoWFactory creates new trip completion unit of work instances.
	CompleteDeliveryUoWFactory interface {
		Create() CompleteDeliveryUoW
	}

	// StaffUoW manages transactions over the staff directory.
	StaffUoW interface {
		TxManager
		EmployeeRepoFactory
		RoleRepoFactory
	}

	// StaffUoWFactory creates new staff unit of work instances.
	StaffUoWFactory interface {
		Create() StaffUoW
	}

	// DeliveryUoW manages transactions for delivery-only operations such as
	// the delay sweep.
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// InventoryUoW manages transactions for inventory-only operations.
	InventoryUoW interface {
		TxManager
		InventoryRepoFactory
	}

	// InventoryUoWFactory creates new inventory unit of work instances.
	InventoryUoWFactory interface {
		Create() InventoryUoW
	}
)
