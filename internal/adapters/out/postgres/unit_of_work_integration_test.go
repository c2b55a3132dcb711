package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "foodorder/internal/adapters/out/postgres"
	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/adapters/out/postgres/restaurantrepo"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/restaurant"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM unit of work against a
// real PostgreSQL instance, including the check-and-set behavior that
// linearizes concurrent transitions on one order.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&restaurantrepo.RestaurantDTO{},
		&restaurantrepo.FoodDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderFoodDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE restaurants, foods, orders, order_foods CASCADE").Error
	suite.Require().NoError(err)
}

// newMenu builds two foods for a fresh restaurant id. The catalog rows are
// not needed by the order repository itself.
func (suite *UnitOfWorkIntegrationTestSuite) newMenu() []*restaurant.Food {
	restaurantID := kernel.NewUUID()
	price, err := restaurant.NewPrice(1250)
	suite.Require().NoError(err)

	menu := make([]*restaurant.Food, 0, 2)
	for _, name := range []string{"Margherita", "Tiramisu"} {
		food, foodErr := restaurant.NewFood(kernel.NewUUID(), restaurantID, name, price)
		suite.Require().NoError(foodErr)
		menu = append(menu, food)
	}
	return menu
}

// seedPlacedOrder persists a freshly placed order outside any transaction.
func (suite *UnitOfWorkIntegrationTestSuite) seedPlacedOrder() *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), suite.newMenu(), "")
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.OrderRepository().Add(context.Background(), o))
	return o
}

// attemptTransition runs one load-check-mutate-save cycle in its own unit of
// work, the way command handlers do.
func (suite *UnitOfWorkIntegrationTestSuite) attemptTransition(
	orderID kernel.UUID,
	apply func(*order.Order) error,
) error {
	ctx := context.Background()
	uow := suite.factory.Create()

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	o, err := uow.OrderRepository().Get(ctx, orderID)
	if err != nil {
		return err
	}

	if err = apply(o); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.RestaurantRepository())
	suite.NotNil(uow2.OrderRepository())
	suite.NotNil(uow2.RestaurantRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Repeated begin calls never nest transactions.
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

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

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MultiRepositoryTransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	r, err := restaurant.NewRestaurant(kernel.NewUUID(), kernel.NewUUID(),
		"Milano", "italian", "Berlin", "Hauptstrasse 1", nil, nil)
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), suite.newMenu(), "")
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.RestaurantRepository().Add(ctx, r)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Add(ctx, o)
	suite.Require().NoError(err)

	// Both writes are visible inside the transaction.
	_, err = uow.RestaurantRepository().Get(ctx, r.ID())
	suite.Require().NoError(err)
	_, err = uow.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.RestaurantRepository().Get(ctx, r.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound, "Restaurant should not exist after rollback")
	_, err = newUow.OrderRepository().Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound, "Order should not exist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersistsTransition() {
	ctx := context.Background()
	o := suite.seedPlacedOrder()

	err := suite.attemptTransition(o.ID(), func(loaded *order.Order) error {
		return loaded.Accept(20)
	})
	suite.Require().NoError(err)

	restored, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(restored.IsAccepted())
	suite.Equal(20, restored.TimeToDeliver())
	suite.Require().NotNil(restored.AcceptedAt())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SecondAcceptConflictsAndChangesNothing() {
	ctx := context.Background()
	o := suite.seedPlacedOrder()

	err := suite.attemptTransition(o.ID(), func(loaded *order.Order) error {
		return loaded.Accept(20)
	})
	suite.Require().NoError(err)

	afterFirst, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)

	err = suite.attemptTransition(o.ID(), func(loaded *order.Order) error {
		return loaded.Accept(45)
	})
	suite.Require().ErrorIs(err, errs.ErrConflict)

	afterSecond, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(20, afterSecond.TimeToDeliver())
	suite.Require().NotNil(afterSecond.AcceptedAt())
	suite.True(afterSecond.AcceptedAt().Equal(*afterFirst.AcceptedAt()),
		"acceptance timestamp is write-once")
}

// TestUnitOfWork_ConcurrentAcceptAndCancel races a merchant acceptance
// against a customer cancellation of the same freshly placed order. The
// FOR UPDATE lock taken on load serializes the two transactions: exactly one
// commits, the other re-reads the committed flags and conflicts.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConcurrentAcceptAndCancel() {
	ctx := context.Background()
	o := suite.seedPlacedOrder()

	results := make(chan error, 2)
	go func() {
		results <- suite.attemptTransition(o.ID(), func(loaded *order.Order) error {
			return loaded.Accept(20)
		})
	}()
	go func() {
		results <- suite.attemptTransition(o.ID(), func(loaded *order.Order) error {
			return loaded.Cancel()
		})
	}()

	first, second := <-results, <-results

	winner, loser := first, second
	if winner != nil {
		winner, loser = second, first
	}
	suite.Require().NoError(winner, "exactly one transition must succeed")
	suite.Require().ErrorIs(loser, errs.ErrConflict,
		"the losing transition must observe the committed state as a conflict")

	final, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)

	suite.NotEqual(final.IsAccepted(), final.IsCancelled(),
		"exactly one flag is set after the race")
	if final.IsAccepted() {
		suite.Require().NotNil(final.AcceptedAt())
		suite.Nil(final.CancelledAt())
		suite.Equal(20, final.TimeToDeliver())
	} else {
		suite.Require().NotNil(final.CancelledAt())
		suite.Nil(final.AcceptedAt())
	}
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
