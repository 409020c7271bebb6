package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "shop/internal/adapters/out/postgres"
	"shop/internal/adapters/out/postgres/customerrepo"
	"shop/internal/adapters/out/postgres/notificationrepo"
	"shop/internal/adapters/out/postgres/orderrepo"
	"shop/internal/adapters/out/postgres/productrepo"
	"shop/internal/core/domain/model/customer"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/notification"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transactional behavior of the
// GORM unit of work against a real PostgreSQL instance.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres_adapter.GormUnitOfWorkFactory
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&customerrepo.CustomerDTO{},
		&productrepo.ProductDTO{},
		&notificationrepo.NotificationDTO{},
	))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE order_lines, orders, customers, products, notifications").Error)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(suite.db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newTestOrder(customerID kernel.UUID, orderNumber int64) *order.Order {
	line, err := order.NewLine(kernel.NewUUID(), 1, "M", "black", 40000, 0, 40000)
	suite.Require().NoError(err)
	address, err := kernel.NewAddress("Main St 1", "home")
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), customerID, orderNumber,
		[]order.Line{line}, address, 5000, 45000)
	suite.Require().NoError(err)

	return testOrder
}

func (suite *UnitOfWorkIntegrationTestSuite) seedCustomer() *customer.Customer {
	testCustomer, err := customer.RestoreCustomer(
		kernel.NewUUID(), "John Doe", "+15550001111",
		false, false, "token-1", customer.DefaultNotificationPrefs())
	suite.Require().NoError(err)

	dto := customerrepo.CustomerDTO{
		ID:                testCustomer.ID().Bytes(),
		Name:              testCustomer.Name(),
		Phone:             testCustomer.Phone(),
		PushToken:         testCustomer.PushToken(),
		NotifyOrderStatus: true,
		NotifyDeals:       true,
		NotifyGeneral:     true,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)

	return testCustomer
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactoryCreatesIndependentInstances() {
	first := suite.factory.Create()
	second := suite.factory.Create()

	suite.NotNil(first)
	suite.NotNil(second)
	suite.NotSame(first, second)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBegin() {
	uow := suite.factory.Create()

	err := uow.Commit(context.Background())
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackWithoutBegin() {
	uow := suite.factory.Create()

	err := uow.Rollback(context.Background())
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBeginIsIdempotent() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitPersistsSingleRepositoryChanges() {
	ctx := context.Background()
	testOrder := suite.newTestOrder(kernel.NewUUID(), 1)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Commit(ctx))

	verifying := suite.factory.Create()
	retrieved, err := verifying.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrieved.ID())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitPersistsMultiRepositoryChanges() {
	ctx := context.Background()
	customerID := kernel.NewUUID()
	testOrder := suite.newTestOrder(customerID, 2)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	queued, err := notification.NewNotification(
		kernel.NewUUID(), customerID, testOrder.ID(), testOrder.OrderNumber(), order.Pending)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.NotificationRepository().Add(ctx, queued))

	suite.Require().NoError(uow.Commit(ctx))

	verifying := suite.factory.Create()
	_, err = verifying.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	unsent, err := verifying.NotificationRepository().GetAllUnsent(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(unsent, 1)
	suite.Equal(queued.ID(), unsent[0].ID())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackDiscardsAllChanges() {
	ctx := context.Background()
	customerID := kernel.NewUUID()
	testOrder := suite.newTestOrder(customerID, 3)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	queued, err := notification.NewNotification(
		kernel.NewUUID(), customerID, testOrder.ID(), testOrder.OrderNumber(), order.Pending)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.NotificationRepository().Add(ctx, queued))

	suite.Require().NoError(uow.Rollback(ctx))

	verifying := suite.factory.Create()
	_, err = verifying.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	unsent, err := verifying.NotificationRepository().GetAllUnsent(ctx, 10)
	suite.Require().NoError(err)
	suite.Empty(unsent)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUncommittedChangesAreInvisibleToOtherInstances() {
	ctx := context.Background()
	testOrder := suite.newTestOrder(kernel.NewUUID(), 4)

	writing := suite.factory.Create()
	suite.Require().NoError(writing.Begin(ctx))
	suite.Require().NoError(writing.OrderRepository().Add(ctx, testOrder))

	reading := suite.factory.Create()
	_, err := reading.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	suite.Require().NoError(writing.Commit(ctx))

	_, err = reading.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositoriesWorkWithoutTransaction() {
	ctx := context.Background()
	testOrder := suite.newTestOrder(kernel.NewUUID(), 5)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	retrieved, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrieved.ID())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCustomerBanWorkflow() {
	ctx := context.Background()
	seeded := suite.seedCustomer()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	loaded, err := uow.CustomerRepository().Get(ctx, seeded.ID())
	suite.Require().NoError(err)
	suite.False(loaded.IsBanned())

	loaded.Ban()
	suite.Require().NoError(uow.CustomerRepository().Update(ctx, loaded))
	suite.Require().NoError(uow.Commit(ctx))

	reloaded, err := suite.factory.Create().CustomerRepository().Get(ctx, seeded.ID())
	suite.Require().NoError(err)
	suite.True(reloaded.IsBanned())
	suite.True(reloaded.BannedByAdmin())
	// profile fields are untouched by the ban update
	suite.Equal(seeded.Name(), reloaded.Name())
	suite.Equal(seeded.PushToken(), reloaded.PushToken())
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
