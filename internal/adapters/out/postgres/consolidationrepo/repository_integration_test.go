package consolidationrepo_test

import (
	"context"
	"testing"
	"time"

	"cargopool/internal/adapters/out/postgres/consolidationrepo"
	"cargopool/internal/adapters/out/postgres/orderrepo"
	"cargopool/internal/core/domain/model/consolidation"
	"cargopool/internal/core/domain/model/kernel"
	"cargopool/internal/core/domain/model/order"
	"cargopool/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// ConsolidationRepositoryIntegrationTestSuite verifies consolidation
// persistence against a real PostgreSQL instance, including the member id
// list read back from the orders table.
type ConsolidationRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *consolidationrepo.GormConsolidationRepository
	tracker    *MockAggregateTracker
}

func (suite *ConsolidationRepositoryIntegrationTestSuite) SetupSuite() {
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
		&consolidationrepo.ConsolidationDTO{},
		&orderrepo.OrderDTO{},
	))
}

func (suite *ConsolidationRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE consolidations, orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = consolidationrepo.NewGormConsolidationRepository(suite.db, suite.tracker)
}

func (suite *ConsolidationRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ConsolidationRepositoryIntegrationTestSuite) seedConsolidation(name string) *consolidation.Consolidation {
	aggregate, err := consolidation.NewConsolidation(kernel.NewUUID(), name)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()
	suite.Require().NoError(suite.repository.Add(context.Background(), aggregate))
	return aggregate
}

func (suite *ConsolidationRepositoryIntegrationTestSuite) seedMemberOrder(consolidationID kernel.UUID) *order.Order {
	price, err := kernel.MoneyFromString("80.00", "USD")
	suite.Require().NoError(err)

	aggregate, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		price, 1, 5, order.Consolidated, &consolidationID, time.Now().UTC(),
	)
	suite.Require().NoError(err)

	orderTracker := new(MockAggregateTracker)
	orderTracker.On("TrackAggregate", mock.Anything, mock.Anything)
	orderRepo := orderrepo.NewGormOrderRepository(suite.db, orderTracker)
	suite.Require().NoError(orderRepo.Add(context.Background(), aggregate))
	return aggregate
}

func (suite *ConsolidationRepositoryIntegrationTestSuite) TestAdd_And_Get_RoundTrip() {
	ctx := context.Background()
	seeded := suite.seedConsolidation("EU week 34")

	retrieved, err := suite.repository.Get(ctx, seeded.ID())
	suite.Require().NoError(err)

	suite.True(seeded.ID().IsEqual(retrieved.ID()))
	suite.Equal("EU week 34", retrieved.Name())
	suite.Equal(consolidation.Pending, retrieved.Status())
	suite.Empty(retrieved.MemberIDs())
	suite.False(retrieved.HasPayment())
	suite.False(retrieved.IsArchived())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ConsolidationRepositoryIntegrationTestSuite) TestGet_ReadsMemberIDsFromOrders() {
	ctx := context.Background()
	seeded := suite.seedConsolidation("EU week 35")
	first := suite.seedMemberOrder(seeded.ID())
	second := suite.seedMemberOrder(seeded.ID())

	retrieved, err := suite.repository.Get(ctx, seeded.ID())
	suite.Require().NoError(err)

	memberIDs := retrieved.MemberIDs()
	suite.Require().Len(memberIDs, 2)
	suite.True(memberIDs[0].Less(memberIDs[1]))
	suite.True(retrieved.HasMember(first.ID()))
	suite.True(retrieved.HasMember(second.ID()))
}

func (suite *ConsolidationRepositoryIntegrationTestSuite) TestGet_NonExistent_NotFound() {
	retrieved, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().ErrorIs(err, errs.ErrNotFound)
}

func (suite *ConsolidationRepositoryIntegrationTestSuite) TestUpdate_WritesZeroValues() {
	ctx := context.Background()
	seeded := suite.seedConsolidation("EU week 36")
	suite.Require().NoError(seeded.SetTrackingNumber("TRK-7"))
	seeded.MarkPaymentAttached()

	suite.tracker.On("TrackAggregate", seeded.ID(), seeded).Twice()
	suite.Require().NoError(suite.repository.Update(ctx, seeded))

	seeded.MarkPaymentDetached()
	suite.Require().NoError(suite.repository.Update(ctx, seeded))

	retrieved, err := suite.repository.Get(ctx, seeded.ID())
	suite.Require().NoError(err)
	suite.False(retrieved.HasPayment())
	suite.Require().NotNil(retrieved.TrackingNumber())
	suite.Equal("TRK-7", *retrieved.TrackingNumber())
}

func (suite *ConsolidationRepositoryIntegrationTestSuite) TestUpdate_NonExistent_NotFound() {
	aggregate, err := consolidation.NewConsolidation(kernel.NewUUID(), "ghost")
	suite.Require().NoError(err)

	suite.Require().ErrorIs(
		suite.repository.Update(context.Background(), aggregate), errs.ErrNotFound)
}

func (suite *ConsolidationRepositoryIntegrationTestSuite) TestGetDeliveredBefore_FiltersCandidates() {
	ctx := context.Background()
	cutoff := time.Now().UTC().Add(-30 * 24 * time.Hour)

	oldShipped := cutoff.Add(-time.Hour)
	recentShipped := cutoff.Add(time.Hour)
	tracking := "TRK-OLD"

	candidate := suite.restoreConsolidation("delivered old", consolidation.Delivered, &oldShipped, &tracking, false)
	suite.restoreConsolidation("delivered recent", consolidation.Delivered, &recentShipped, &tracking, false)
	suite.restoreConsolidation("already archived", consolidation.Delivered, &oldShipped, &tracking, true)
	suite.restoreConsolidation("still in transit", consolidation.InTransit, &oldShipped, &tracking, false)

	candidates, err := suite.repository.GetDeliveredBefore(ctx, cutoff)
	suite.Require().NoError(err)
	suite.Require().Len(candidates, 1)
	suite.True(candidate.ID().IsEqual(candidates[0].ID()))
}

func (suite *ConsolidationRepositoryIntegrationTestSuite) restoreConsolidation(
	name string,
	status consolidation.Status,
	shippedAt *time.Time,
	trackingNumber *string,
	archived bool,
) *consolidation.Consolidation {
	zero, err := kernel.ZeroMoney(consolidation.DefaultCurrency)
	suite.Require().NoError(err)

	aggregate, err := consolidation.RestoreConsolidation(
		kernel.NewUUID(), name, nil,
		consolidation.Aggregates{TotalValue: zero},
		status, shippedAt, trackingNumber, false, archived, time.Now().UTC(),
	)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()
	suite.Require().NoError(suite.repository.Add(context.Background(), aggregate))
	return aggregate
}

func TestConsolidationRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ConsolidationRepositoryIntegrationTestSuite))
}
