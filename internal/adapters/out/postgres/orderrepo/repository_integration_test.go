package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"shop/internal/adapters/out/postgres/orderrepo"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container       *postgres.PostgresContainer
	db              *gorm.DB
	orderRepository *orderrepo.GormOrderRepository
	tracker         *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
	))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_lines, orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.orderRepository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) newTestOrder(customerID kernel.UUID, orderNumber int64) *order.Order {
	line, err := order.NewLine(kernel.NewUUID(), 2, "M", "black", 20000, 50, 10000)
	suite.Require().NoError(err)
	secondLine, err := order.NewLine(kernel.NewUUID(), 1, "L", "white", 100000, 0, 100000)
	suite.Require().NoError(err)
	address, err := kernel.NewAddress("Main St 1", "home")
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), customerID, orderNumber,
		[]order.Line{line, secondLine}, address, 0, 120000)
	suite.Require().NoError(err)

	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	customerID := kernel.NewUUID()
	testOrder := suite.newTestOrder(customerID, 1)

	err := suite.orderRepository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrieved, err := suite.orderRepository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(testOrder.ID(), retrieved.ID())
	suite.Equal(customerID, retrieved.CustomerID())
	suite.Equal(int64(1), retrieved.OrderNumber())
	suite.Equal(order.Pending, retrieved.Status())
	suite.False(retrieved.CancelledByAdmin())
	suite.Equal("Main St 1", retrieved.Address().Street())
	suite.Equal("home", retrieved.Address().Label())
	suite.Equal(int64(0), retrieved.DeliveryFee())
	suite.Equal(int64(120000), retrieved.TotalPrice())

	suite.Require().Len(retrieved.Lines(), 2)
	suite.Equal(2, retrieved.Lines()[0].Quantity())
	suite.Equal(int64(10000), retrieved.Lines()[0].DiscountedPrice())
	suite.Equal(50, retrieved.Lines()[0].DiscountPercent())
	suite.Equal(int64(20000), retrieved.Lines()[0].OriginalPrice())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateOrderNumber() {
	ctx := context.Background()
	first := suite.newTestOrder(kernel.NewUUID(), 7)
	second := suite.newTestOrder(kernel.NewUUID(), 7)

	err := suite.orderRepository.Add(ctx, first)
	suite.Require().NoError(err)

	err = suite.orderRepository.Add(ctx, second)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	_, err := suite.orderRepository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusAndAdminFlag() {
	ctx := context.Background()
	testOrder := suite.newTestOrder(kernel.NewUUID(), 2)

	err := suite.orderRepository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = testOrder.TransitionTo(order.Cancelled, order.ActorAdmin)
	suite.Require().NoError(err)

	err = suite.orderRepository.Update(ctx, testOrder)
	suite.Require().NoError(err)

	retrieved, err := suite.orderRepository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Cancelled, retrieved.Status())
	suite.True(retrieved.CancelledByAdmin())
	// lines survive untouched
	suite.Len(retrieved.Lines(), 2)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestTimestamps_SetOnAddAdvancedOnUpdate() {
	ctx := context.Background()
	testOrder := suite.newTestOrder(kernel.NewUUID(), 6)

	err := suite.orderRepository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	var stored orderrepo.OrderDTO
	suite.Require().NoError(suite.db.First(&stored, "id = ?", testOrder.ID().Bytes()).Error)
	suite.False(stored.CreatedAt.IsZero())
	suite.False(stored.UpdatedAt.IsZero())
	createdAt := stored.CreatedAt

	err = testOrder.TransitionTo(order.Shipped, order.ActorAdmin)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepository.Update(ctx, testOrder))

	suite.Require().NoError(suite.db.First(&stored, "id = ?", testOrder.ID().Bytes()).Error)
	suite.True(stored.CreatedAt.Equal(createdAt))
	suite.False(stored.UpdatedAt.Before(stored.CreatedAt))
	suite.True(stored.UpdatedAt.After(createdAt))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_MissingOrder() {
	ctx := context.Background()
	testOrder := suite.newTestOrder(kernel.NewUUID(), 3)

	err := suite.orderRepository.Update(ctx, testOrder)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByCustomer_NewestFirst() {
	ctx := context.Background()
	customerID := kernel.NewUUID()
	otherCustomerID := kernel.NewUUID()

	oldest := suite.newTestOrder(customerID, 10)
	newest := suite.newTestOrder(customerID, 12)
	middle := suite.newTestOrder(customerID, 11)
	foreign := suite.newTestOrder(otherCustomerID, 13)

	for _, o := range []*order.Order{oldest, newest, middle, foreign} {
		suite.Require().NoError(suite.orderRepository.Add(ctx, o))
	}

	orders, err := suite.orderRepository.GetAllByCustomer(ctx, customerID)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 3)
	suite.Equal(int64(12), orders[0].OrderNumber())
	suite.Equal(int64(11), orders[1].OrderNumber())
	suite.Equal(int64(10), orders[2].OrderNumber())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByCustomer_Empty() {
	ctx := context.Background()

	orders, err := suite.orderRepository.GetAllByCustomer(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Empty(orders)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestCountCancelledByAdmin() {
	ctx := context.Background()
	customerID := kernel.NewUUID()

	adminCancelled := suite.newTestOrder(customerID, 20)
	suite.Require().NoError(adminCancelled.TransitionTo(order.Cancelled, order.ActorAdmin))

	selfCancelled := suite.newTestOrder(customerID, 21)
	suite.Require().NoError(selfCancelled.TransitionTo(order.Cancelled, order.ActorCustomer))

	active := suite.newTestOrder(customerID, 22)

	for _, o := range []*order.Order{adminCancelled, selfCancelled, active} {
		suite.Require().NoError(suite.orderRepository.Add(ctx, o))
	}

	count, err := suite.orderRepository.CountCancelledByAdmin(ctx, customerID)
	suite.Require().NoError(err)
	suite.Equal(1, count)

	count, err = suite.orderRepository.CountCancelledByAdmin(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Equal(0, count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
