package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "aquaflow/internal/adapters/out/postgres"
	"aquaflow/internal/adapters/out/postgres/deliveryrepo"
	"aquaflow/internal/adapters/out/postgres/inventoryrepo"
	"aquaflow/internal/adapters/out/postgres/orderrepo"
	"aquaflow/internal/adapters/out/postgres/productrepo"
	"aquaflow/internal/adapters/out/postgres/staffrepo"
	"aquaflow/internal/core/domain/model/inventory"
	"aquaflow/internal/core/domain/model/kernel"
	"aquaflow/internal/core/domain/model/order"
	"aquaflow/internal/core/domain/model/staff"
	"aquaflow/internal/core/ports"
	"aquaflow/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM unit of work and the
// repositories it hands out against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite starts a PostgreSQL container and migrates the schema.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&productrepo.ProductDTO{},
		&inventoryrepo.LotDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineDTO{},
		&deliveryrepo.DeliveryDTO{},
		&staffrepo.DepartmentDTO{},
		&staffrepo.RoleDTO{},
		&staffrepo.EmployeeDTO{},
		&staffrepo.RoleAssignmentDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest truncates all tables so tests cannot interfere with each other.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE orders, order_lines, lots, products, deliveries, employees, employee_roles, roles, departments",
	).Error
	suite.Require().NoError(err)
}

// TearDownSuite terminates the PostgreSQL container.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.InventoryRepository())
	suite.NotNil(uow2.EmployeeRepository())
	suite.NotNil(uow2.DeliveryRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().Error(uow.Commit(ctx), "Should error when committing without active transaction")
	suite.Require().Error(uow.Rollback(ctx), "Should error when rolling back without active transaction")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestOrderRepository_RoundTrip() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Commit(ctx))

	restored, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(restored.IsEqual(testOrder))
	suite.Equal(order.Pending, restored.Status())
	suite.Len(restored.Lines(), 2)
	suite.Equal(testOrder.Total().Cents(), restored.Total().Cents())
	suite.Equal(testOrder.ShippingAddress().String(), restored.ShippingAddress().String())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestInventoryRepository_LockSerializesDecrements() {
	ctx := context.Background()

	productID := kernel.NewUUID()
	lot := suite.createTestLot(productID, 100)

	seed := suite.factory.Create()
	suite.Require().NoError(seed.Begin(ctx))
	suite.Require().NoError(seed.InventoryRepository().Add(ctx, lot))
	suite.Require().NoError(seed.Commit(ctx))

	// First transaction locks the lot, then a competing transaction tries
	// the same lock and must wait until the first one commits.
	uow1 := suite.factory.Create()
	suite.Require().NoError(uow1.Begin(ctx))

	locked, err := uow1.InventoryRepository().GetForUpdateByProductIDs(ctx, []kernel.UUID{productID})
	suite.Require().NoError(err)
	suite.Require().Len(locked, 1)
	suite.Require().NoError(locked[0].Decrement(30))
	suite.Require().NoError(uow1.InventoryRepository().Update(ctx, locked[0]))

	done := make(chan error, 1)
	go func() {
		uow2 := suite.factory.Create()
		if err := uow2.Begin(ctx); err != nil {
			done <- err
			return
		}
		defer uow2.Rollback(ctx)

		lots, err := uow2.InventoryRepository().GetForUpdateByProductIDs(ctx, []kernel.UUID{productID})
		if err != nil {
			done <- err
			return
		}
		if err := lots[0].Decrement(20); err != nil {
			done <- err
			return
		}
		if err := uow2.InventoryRepository().Update(ctx, lots[0]); err != nil {
			done <- err
			return
		}
		done <- uow2.Commit(ctx)
	}()

	// Give the competitor time to block on the row lock before releasing it.
	time.Sleep(200 * time.Millisecond)
	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(<-done)

	final, err := suite.factory.Create().InventoryRepository().GetByProductID(ctx, productID)
	suite.Require().NoError(err)
	suite.Equal(50, final.Quantity(), "Both decrements should apply exactly once")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestInventoryRepository_RacingDecrementsOneSucceedsOneFails() {
	ctx := context.Background()

	productID := kernel.NewUUID()
	lot := suite.createTestLot(productID, 40)

	seed := suite.factory.Create()
	suite.Require().NoError(seed.Begin(ctx))
	suite.Require().NoError(seed.InventoryRepository().Add(ctx, lot))
	suite.Require().NoError(seed.Commit(ctx))

	uow1 := suite.factory.Create()
	suite.Require().NoError(uow1.Begin(ctx))

	locked, err := uow1.InventoryRepository().GetForUpdateByProductIDs(ctx, []kernel.UUID{productID})
	suite.Require().NoError(err)
	suite.Require().Len(locked, 1)
	suite.Require().NoError(locked[0].Decrement(30))
	suite.Require().NoError(uow1.InventoryRepository().Update(ctx, locked[0]))

	// The competitor wants more than what the first commit leaves behind, so
	// once the lock is released it must see the fresh quantity and fail.
	done := make(chan error, 1)
	go func() {
		uow2 := suite.factory.Create()
		if err := uow2.Begin(ctx); err != nil {
			done <- err
			return
		}
		defer uow2.Rollback(ctx)

		lots, err := uow2.InventoryRepository().GetForUpdateByProductIDs(ctx, []kernel.UUID{productID})
		if err != nil {
			done <- err
			return
		}
		done <- lots[0].Decrement(20)
	}()

	time.Sleep(200 * time.Millisecond)
	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().ErrorIs(<-done, inventory.ErrNotEnoughStock)

	final, err := suite.factory.Create().InventoryRepository().GetByProductID(ctx, productID)
	suite.Require().NoError(err)
	suite.Equal(10, final.Quantity(), "The losing transaction must leave the lot unchanged")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestInventoryRepository_MissingLotReported() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer uow.Rollback(ctx)

	_, err := uow.InventoryRepository().GetForUpdateByProductIDs(ctx, []kernel.UUID{kernel.NewUUID()})
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestEmployeeRepository_SkipLockedPicksDifferentCouriers() {
	ctx := context.Background()

	seed := suite.factory.Create()
	suite.Require().NoError(seed.Begin(ctx))
	suite.Require().NoError(seed.EmployeeRepository().Add(ctx, suite.createTestEmployee("Ana Condori")))
	suite.Require().NoError(seed.EmployeeRepository().Add(ctx, suite.createTestEmployee("Jorge Mamani")))
	suite.Require().NoError(seed.Commit(ctx))

	uow1 := suite.factory.Create()
	suite.Require().NoError(uow1.Begin(ctx))
	defer uow1.Rollback(ctx)

	uow2 := suite.factory.Create()
	suite.Require().NoError(uow2.Begin(ctx))
	defer uow2.Rollback(ctx)

	first, err := uow1.EmployeeRepository().GetFirstAvailableForUpdate(ctx)
	suite.Require().NoError(err)

	second, err := uow2.EmployeeRepository().GetFirstAvailableForUpdate(ctx)
	suite.Require().NoError(err)

	suite.False(first.ID().IsEqual(second.ID()), "Concurrent transactions should lock different couriers")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestEmployeeRepository_RoleAssignmentsRewritten() {
	ctx := context.Background()

	roleA := kernel.NewUUID()
	roleB := kernel.NewUUID()

	employee := suite.createTestEmployee("Maria Quispe")
	suite.Require().NoError(employee.AssignRole(roleA, true))

	seed := suite.factory.Create()
	suite.Require().NoError(seed.Begin(ctx))
	suite.Require().NoError(seed.EmployeeRepository().Add(ctx, employee))
	suite.Require().NoError(seed.Commit(ctx))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	loaded, err := uow.EmployeeRepository().Get(ctx, employee.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.AssignRole(roleB, false))
	suite.Require().NoError(loaded.SetPrincipalRole(roleB))
	suite.Require().NoError(uow.EmployeeRepository().Update(ctx, loaded))
	suite.Require().NoError(uow.Commit(ctx))

	restored, err := suite.factory.Create().EmployeeRepository().Get(ctx, employee.ID())
	suite.Require().NoError(err)
	suite.Require().Len(restored.Roles(), 2)
	suite.Require().NotNil(restored.PrincipalRoleID())
	suite.True(restored.PrincipalRoleID().IsEqual(roleB))

	principals := 0
	for _, assignment := range restored.Roles() {
		if assignment.IsPrincipal() {
			principals++
		}
	}
	suite.Equal(1, principals)
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder() *order.Order {
	address, err := kernel.NewAddress("Av. Ballivian 123, La Paz")
	suite.Require().NoError(err)

	price, err := kernel.NewMoney(1500)
	suite.Require().NoError(err)

	lineA, err := order.NewLine(kernel.NewUUID(), "Agua 625ml", 10, price)
	suite.Require().NoError(err)
	lineB, err := order.NewLine(kernel.NewUUID(), "Bidon 20L", 2, price)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		address,
		[]order.Line{lineA, lineB},
		"dejar en porteria",
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestLot(productID kernel.UUID, quantity int) *inventory.Lot {
	lot, err := inventory.NewLot(kernel.NewUUID(), productID, "L-2026-081", quantity, 10, 5, nil)
	suite.Require().NoError(err)
	return lot
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestEmployee(fullName string) *staff.Employee {
	employee, err := staff.NewEmployee(kernel.NewUUID(), fullName, "+591 700 12345")
	suite.Require().NoError(err)
	return employee
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
