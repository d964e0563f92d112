package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"ordercompletion/internal/adapters/out/postgres/orderrepo"
	"ordercompletion/internal/core/domain/model/order"
	"ordercompletion/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id int64, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderLineDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_lines").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(1)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_NotConstructedOrder_Fails() {
	ctx := context.Background()

	err := suite.repository.Add(ctx, &order.Order{})

	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
	suite.assertOrderCount(0)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTripsLines() {
	ctx := context.Background()

	delivered := 3
	line1, err := order.NewLine(10, 3, &delivered)
	suite.Require().NoError(err)
	line2, err := order.NewLine(11, 5, nil)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(7, suite.orderDate(), []order.Line{line1, line2})
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, 7)
	suite.Require().NoError(err)

	suite.Equal(int64(7), restored.ID())
	suite.Equal(order.Submitted, restored.Status())
	suite.Require().Len(restored.Lines(), 2)
	suite.Equal(int64(10), restored.Lines()[0].ProductID())
	suite.Require().NotNil(restored.Lines()[0].DeliveredQuantity())
	suite.Equal(3, *restored.Lines()[0].DeliveredQuantity())
	suite.Nil(restored.Lines()[1].DeliveredQuantity())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_MissingOrder_ReturnsNotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, 404)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestFetchByIDs_ReturnsOnlyExistingOrdersAscending() {
	ctx := context.Background()

	for _, id := range []int64{3, 1, 2} {
		suite.addTestOrder(id)
	}

	orders, err := suite.repository.FetchByIDs(ctx, []int64{2, 99, 3, 1})
	suite.Require().NoError(err)

	suite.Require().Len(orders, 3)
	suite.Equal(int64(1), orders[0].ID())
	suite.Equal(int64(2), orders[1].ID())
	suite.Equal(int64(3), orders[2].ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestFetchByIDs_EmptyInput_ReturnsEmptySlice() {
	ctx := context.Background()

	orders, err := suite.repository.FetchByIDs(ctx, nil)

	suite.Require().NoError(err)
	suite.NotNil(orders)
	suite.Empty(orders)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestCompleteOrders_TransitionsSubmittedRows() {
	ctx := context.Background()

	suite.addTestOrder(1)
	suite.addTestOrder(2)
	suite.addTestOrder(3)

	updated, err := suite.repository.CompleteOrders(ctx, []int64{1, 3})
	suite.Require().NoError(err)
	suite.Equal(int64(2), updated)

	for id, wantStatus := range map[int64]order.Status{
		1: order.Finished,
		2: order.Submitted,
		3: order.Finished,
	} {
		restored, getErr := suite.repository.Get(ctx, id)
		suite.Require().NoError(getErr)
		suite.Equal(wantStatus, restored.Status(), "order %d", id)
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestCompleteOrders_IsIdempotent() {
	ctx := context.Background()

	suite.addTestOrder(1)

	updated, err := suite.repository.CompleteOrders(ctx, []int64{1})
	suite.Require().NoError(err)
	suite.Equal(int64(1), updated)

	updated, err = suite.repository.CompleteOrders(ctx, []int64{1})
	suite.Require().NoError(err)
	suite.Zero(updated, "second invocation must not change any rows")
}

func (suite *OrderRepositoryIntegrationTestSuite) TestCompleteOrders_UnknownIDs_UpdatesNothing() {
	ctx := context.Background()

	updated, err := suite.repository.CompleteOrders(ctx, []int64{41, 42})

	suite.Require().NoError(err)
	suite.Zero(updated)
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(id int64) *order.Order {
	delivered := 2
	line, err := order.NewLine(100, 2, &delivered)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(id, suite.orderDate(), []order.Line{line})
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) addTestOrder(id int64) {
	testOrder := suite.createTestOrder(id)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(context.Background(), testOrder))
}

func (suite *OrderRepositoryIntegrationTestSuite) orderDate() time.Time {
	return time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC)
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
