package queries_test

import (
	"context"
	"testing"
	"time"

	"pizzeria/internal/adapters/out/postgres/deliverylogrepo"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/agent"
	"pizzeria/internal/core/domain/model/delivery"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetCompletedDeliveriesQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetCompletedDeliveriesQueryHandler
}

func (suite *GetCompletedDeliveriesQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&deliverylogrepo.DeliveryRecordDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetCompletedDeliveriesQueryHandler(db)
}

func (suite *GetCompletedDeliveriesQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetCompletedDeliveriesQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE deliveries").Error
	suite.Require().NoError(err)
}

func (suite *GetCompletedDeliveriesQueryHandlerTestSuite) TestHandle_EmptyJournal_ReturnsEmptySlice() {
	query, err := queries.NewGetCompletedDeliveriesQuery(10)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetCompletedDeliveriesQueryHandlerTestSuite) TestHandle_WithDeliveries_ReturnsNewestFirst() {
	base := time.Now().Add(-time.Hour)
	oldest := suite.seedDelivery(1, 3, agent.Normal, 250.0, 1, base)
	middle := suite.seedDelivery(2, 7, agent.Selected, 130.5, 2, base.Add(10*time.Minute))
	newest := suite.seedDelivery(3, 9, agent.Arrived, 75.0, 4, base.Add(20*time.Minute))

	query, err := queries.NewGetCompletedDeliveriesQuery(10)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)

	suite.Equal(newest.ID(), result[0].ID)
	suite.Equal(order.Number(3), result[0].OrderNumber)
	suite.Equal(order.HouseNumber(9), result[0].House)
	suite.Equal(agent.Arrived, result[0].Urgency)
	suite.InDelta(75.0, result[0].Distance, 1e-9)
	suite.Equal(4, result[0].Attempts)
	suite.WithinDuration(newest.DeliveredAt(), result[0].DeliveredAt, time.Second)

	suite.Equal(middle.ID(), result[1].ID)
	suite.Equal(agent.Selected, result[1].Urgency)
	suite.InDelta(130.5, result[1].Distance, 1e-9)

	suite.Equal(oldest.ID(), result[2].ID)
	suite.Equal(agent.Normal, result[2].Urgency)
	suite.Equal(1, result[2].Attempts)
}

func (suite *GetCompletedDeliveriesQueryHandlerTestSuite) TestHandle_MoreDeliveriesThanLimit_TruncatesToNewest() {
	base := time.Now().Add(-time.Hour)
	for i := range 5 {
		suite.seedDelivery(
			order.Number(i+1), order.HouseNumber(i),
			agent.Normal, 200.0, 1,
			base.Add(time.Duration(i)*time.Minute),
		)
	}

	query, err := queries.NewGetCompletedDeliveriesQuery(2)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(order.Number(5), result[0].OrderNumber)
	suite.Equal(order.Number(4), result[1].OrderNumber)
}

func (suite *GetCompletedDeliveriesQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetCompletedDeliveriesQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetCompletedDeliveriesQuery constructor")
}

func (suite *GetCompletedDeliveriesQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	base := time.Now().Add(-time.Hour)
	for i := range 50 {
		suite.seedDelivery(
			order.Number(i+1), order.HouseNumber(i%10),
			agent.Normal, 200.0, 1,
			base.Add(time.Duration(i)*time.Second),
		)
	}

	query, err := queries.NewGetCompletedDeliveriesQuery(50)
	suite.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().Error(err)
	suite.Nil(result)
}

func (suite *GetCompletedDeliveriesQueryHandlerTestSuite) TestHandle_VariousUrgencies_CorrectlyMapsUrgency() {
	testCases := []struct {
		urgency agent.Urgency
		number  order.Number
	}{
		{agent.Normal, 1},
		{agent.Selected, 2},
		{agent.Arrived, 3},
	}

	base := time.Now().Add(-time.Hour)
	for i, tc := range testCases {
		suite.seedDelivery(tc.number, 5, tc.urgency, 180.0, 1, base.Add(time.Duration(i)*time.Minute))
	}

	query, err := queries.NewGetCompletedDeliveriesQuery(10)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, len(testCases))

	resultMap := make(map[order.Number]queries.GetCompletedDeliveriesQueryResponse)
	for _, r := range result {
		resultMap[r.OrderNumber] = r
	}

	for _, tc := range testCases {
		entry, exists := resultMap[tc.number]
		suite.True(exists, "Delivery for order %d not found", tc.number)
		suite.Equal(tc.urgency, entry.Urgency)
	}
}

// seedDelivery writes one journal record straight through the repository.
func (suite *GetCompletedDeliveriesQueryHandlerTestSuite) seedDelivery(
	number order.Number, house order.HouseNumber,
	urgency agent.Urgency, distance float64, attempts int,
	deliveredAt time.Time,
) *delivery.Record {
	ord, err := order.NewOrder(number, house)
	suite.Require().NoError(err)

	record, err := delivery.NewRecord(kernel.NewUUID(), ord, urgency, distance, attempts, deliveredAt)
	suite.Require().NoError(err)

	repo := deliverylogrepo.NewGormDeliveryLogRepository(suite.db, &mockAggregateTracker{})
	err = repo.Add(context.Background(), record)
	suite.Require().NoError(err)

	return record
}

func TestGetCompletedDeliveriesQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetCompletedDeliveriesQueryHandlerTestSuite))
}

// mockAggregateTracker is a no-op tracker for seeding outside a unit of work.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {
	// No-op for query tests
}
