package orderrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"pharmacy/internal/adapters/out/postgres/orderrepo"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/order"
	"pharmacy/internal/pkg/errs"

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

// OrderRepositoryIntegrationTestSuite verifies order persistence against a
// real PostgreSQL instance, in particular the conditional agent-pointer
// writes that dispatch depends on.
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTripWithItems() {
	ctx := context.Background()
	seeded := suite.seedOrder(order.Pending, nil)

	loaded, err := suite.repository.Get(ctx, seeded.ID())
	suite.Require().NoError(err)

	suite.True(loaded.ID().IsEqual(seeded.ID()))
	suite.True(loaded.CustomerID().IsEqual(seeded.CustomerID()))
	suite.Equal(order.Pending, loaded.Status())
	suite.Equal(order.DeliveryTypeHome, loaded.DeliveryType())
	suite.Equal(seeded.Total(), loaded.Total())
	suite.Nil(loaded.Agent())
	suite.Nil(loaded.Location())

	suite.Require().Len(loaded.Items(), 2)
	suite.Equal("ibuprofen 400mg", loaded.Items()[0].Name())
	suite.Equal(int64(599), loaded.Items()[0].UnitPrice())
	suite.Equal(2, loaded.Items()[0].Quantity())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_Unknown_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusLocationAndItemFlags() {
	ctx := context.Background()
	seeded := suite.seedOrder(order.Processing, nil)

	location, err := kernel.NewLocation(52.52, 13.405)
	suite.Require().NoError(err)
	suite.Require().NoError(seeded.SetLocation(location))

	firstProduct := seeded.Items()[0].ProductID()
	suite.Require().NoError(seeded.CommitItem(firstProduct))
	suite.Require().NoError(seeded.MarkItemOutOfStock(seeded.Items()[1].ProductID()))
	suite.Require().NoError(seeded.FinishPreparation())

	suite.tracker.On("TrackAggregate", seeded.ID(), seeded).Once()
	suite.Require().NoError(suite.repository.Update(ctx, seeded))

	loaded, err := suite.repository.Get(ctx, seeded.ID())
	suite.Require().NoError(err)

	suite.Equal(order.OutForDelivery, loaded.Status())
	suite.Require().NotNil(loaded.Location())
	suite.InDelta(52.52, loaded.Location().Latitude(), 0.0001)

	suite.True(loaded.Items()[0].IsCommitted())
	suite.False(loaded.Items()[0].IsOutOfStock())
	suite.True(loaded.Items()[1].IsOutOfStock())
	suite.False(loaded.Items()[1].IsCommitted())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_Unknown_ReturnsNotFound() {
	missing := suite.buildOrder(order.Pending, nil)

	err := suite.repository.Update(context.Background(), missing)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_RemovesOrderAndItems() {
	ctx := context.Background()
	seeded := suite.seedOrder(order.Pending, nil)

	suite.Require().NoError(suite.repository.Delete(ctx, seeded.ID()))

	_, err := suite.repository.Get(ctx, seeded.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	var itemCount int64
	suite.Require().NoError(
		suite.db.Model(&orderrepo.ItemDTO{}).Where("order_id = ?", seeded.ID().Bytes()).Count(&itemCount).Error,
	)
	suite.Zero(itemCount)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_Unknown_ReturnsNotFound() {
	err := suite.repository.Delete(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllDispatchable_FiltersStatusAndAssignment() {
	ctx := context.Background()

	dispatchable := suite.seedOrder(order.OutForDelivery, nil)
	suite.seedOrder(order.Ready, nil)
	suite.seedOrder(order.Pending, nil)

	withAssignment := suite.buildOrder(order.OutForDelivery, nil)
	suite.Require().NoError(withAssignment.SetAssignment(kernel.NewUUID()))
	suite.tracker.On("TrackAggregate", withAssignment.ID(), withAssignment).Once()
	suite.Require().NoError(suite.repository.Add(ctx, withAssignment))

	orders, err := suite.repository.GetAllDispatchable(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(orders, 1)
	suite.True(orders[0].ID().IsEqual(dispatchable.ID()))
	suite.Len(orders[0].Items(), 2)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestClaimAgent_WritesPointerAndStatus() {
	ctx := context.Background()
	seeded := suite.seedOrder(order.OutForDelivery, nil)
	agentID := kernel.NewUUID()

	suite.Require().NoError(suite.repository.ClaimAgent(ctx, seeded.ID(), agentID))

	loaded, err := suite.repository.Get(ctx, seeded.ID())
	suite.Require().NoError(err)
	suite.Equal(order.AgentAssigned, loaded.Status())
	suite.Require().NotNil(loaded.Agent())
	suite.True(loaded.Agent().IsEqual(agentID))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestClaimAgent_SameAgentTwice_Succeeds() {
	ctx := context.Background()
	seeded := suite.seedOrder(order.OutForDelivery, nil)
	agentID := kernel.NewUUID()

	suite.Require().NoError(suite.repository.ClaimAgent(ctx, seeded.ID(), agentID))
	suite.Require().NoError(suite.repository.ClaimAgent(ctx, seeded.ID(), agentID))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestClaimAgent_HeldByAnotherAgent_ReturnsConflict() {
	ctx := context.Background()
	holder := kernel.NewUUID()
	seeded := suite.seedOrder(order.AgentAssigned, &holder)

	err := suite.repository.ClaimAgent(ctx, seeded.ID(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestClaimAgent_NotClaimableStatus_ReturnsInvalidTransition() {
	ctx := context.Background()
	seeded := suite.seedOrder(order.Pending, nil)

	err := suite.repository.ClaimAgent(ctx, seeded.ID(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrInvalidTransition)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestClaimAgent_Unknown_ReturnsNotFound() {
	err := suite.repository.ClaimAgent(context.Background(), kernel.NewUUID(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestClaimAgent_Concurrent_ExactlyOneWinner() {
	ctx := context.Background()
	seeded := suite.seedOrder(order.OutForDelivery, nil)

	const contenders = 10
	results := make(chan error, contenders)

	var wg sync.WaitGroup
	for range contenders {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- suite.repository.ClaimAgent(ctx, seeded.ID(), kernel.NewUUID())
		}()
	}
	wg.Wait()
	close(results)

	winners := 0
	for err := range results {
		if err == nil {
			winners++
			continue
		}
		suite.Require().ErrorIs(err, errs.ErrConflict)
	}

	suite.Equal(1, winners)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestReassignAgent_MovesPointer() {
	ctx := context.Background()
	from := kernel.NewUUID()
	to := kernel.NewUUID()
	seeded := suite.seedOrder(order.AgentAssigned, &from)

	suite.Require().NoError(suite.repository.ReassignAgent(ctx, seeded.ID(), from, to))

	loaded, err := suite.repository.Get(ctx, seeded.ID())
	suite.Require().NoError(err)
	suite.Equal(order.AgentAssigned, loaded.Status())
	suite.Require().NotNil(loaded.Agent())
	suite.True(loaded.Agent().IsEqual(to))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestReassignAgent_WrongHolder_ReturnsConflict() {
	ctx := context.Background()
	holder := kernel.NewUUID()
	seeded := suite.seedOrder(order.AgentAssigned, &holder)

	err := suite.repository.ReassignAgent(ctx, seeded.ID(), kernel.NewUUID(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestReleaseAgent_ReturnsOrderToPool() {
	ctx := context.Background()
	holder := kernel.NewUUID()
	seeded := suite.seedOrder(order.AgentAssigned, &holder)

	suite.Require().NoError(suite.repository.ReleaseAgent(ctx, seeded.ID(), holder))

	loaded, err := suite.repository.Get(ctx, seeded.ID())
	suite.Require().NoError(err)
	suite.Equal(order.OutForDelivery, loaded.Status())
	suite.Nil(loaded.Agent())
}

func (suite *OrderRepositoryIntegrationTestSuite) buildOrder(status order.Status, agentID *kernel.UUID) *order.Order {
	first, err := order.NewItem(kernel.NewUUID(), "ibuprofen 400mg", 599, 2)
	suite.Require().NoError(err)
	second, err := order.NewItem(kernel.NewUUID(), "paracetamol 500mg", 349, 1)
	suite.Require().NoError(err)

	o, err := order.RestoreOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		order.TypeProduct,
		order.DeliveryTypeHome,
		[]order.Item{first, second},
		0,
		status,
		agentID,
		nil,
		nil,
		"",
	)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) seedOrder(status order.Status, agentID *kernel.UUID) *order.Order {
	o := suite.buildOrder(status, agentID)
	suite.tracker.On("TrackAggregate", o.ID(), o).Once()
	suite.Require().NoError(suite.repository.Add(context.Background(), o))
	return o
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
