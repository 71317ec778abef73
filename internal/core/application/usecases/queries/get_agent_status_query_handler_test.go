package queries_test

import (
	"context"
	"testing"

	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/agent"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockQueryWorld is a mock implementation of ports.World for query handler tests.
type MockQueryWorld struct {
	mock.Mock
}

func (m *MockQueryWorld) PizzaOrders() []order.Order {
	args := m.Called()
	return args.Get(0).([]order.Order)
}

func (m *MockQueryWorld) HouseLocations() map[order.HouseNumber]kernel.Location {
	args := m.Called()
	return args.Get(0).(map[order.HouseNumber]kernel.Location)
}

func (m *MockQueryWorld) HouseTimeLeft(house order.HouseNumber) float64 {
	args := m.Called(house)
	return args.Get(0).(float64)
}

func (m *MockQueryWorld) DistanceTo(target kernel.Location) float64 {
	args := m.Called(target)
	return args.Get(0).(float64)
}

func (m *MockQueryWorld) MaxSpeed() float64 {
	args := m.Called()
	return args.Get(0).(float64)
}

func (m *MockQueryWorld) PizzaAmount() int {
	args := m.Called()
	return args.Int(0)
}

func (m *MockQueryWorld) TryGrabPizza() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockQueryWorld) TryDeliverPizza(number order.Number) bool {
	args := m.Called(number)
	return args.Bool(0)
}

func (m *MockQueryWorld) AwaitsPizzaDelivery(house order.HouseNumber) bool {
	args := m.Called(house)
	return args.Bool(0)
}

func (m *MockQueryWorld) SetMoveDestination(target kernel.Location) {
	m.Called(target)
}

func queryLocation(t *testing.T, x, y float64) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(x, y)
	require.NoError(t, err)
	return loc
}

func queryOrder(t *testing.T, number order.Number, house order.HouseNumber) order.Order {
	t.Helper()
	ord, err := order.NewOrder(number, house)
	require.NoError(t, err)
	return ord
}

func TestGetAgentStatusQueryHandler_Handle(t *testing.T) {
	t.Run("idle agent", func(t *testing.T) {
		a, err := agent.NewAgent(kernel.NewUUID())
		require.NoError(t, err)

		world := new(MockQueryWorld)
		world.On("PizzaAmount").Return(2).Once()
		world.On("PizzaOrders").Return([]order.Order{
			queryOrder(t, 1, 3),
			queryOrder(t, 2, 7),
			queryOrder(t, 3, 9),
		}).Once()

		handler := queries.NewGetAgentStatusQueryHandler(a, world)
		status, err := handler.Handle(context.Background(), queries.NewGetAgentStatusQuery())
		require.NoError(t, err)

		assert.Equal(t, a.ID(), status.AgentID)
		assert.False(t, status.Delivering)
		assert.Equal(t, agent.Normal, status.Urgency)
		assert.Equal(t, 2, status.PizzaAmount)
		assert.Equal(t, 3, status.OutstandingOrders)
		assert.Equal(t, order.Number(0), status.OrderNumber)
		assert.Zero(t, status.DistanceToTarget)

		world.AssertExpectations(t)
		world.AssertNotCalled(t, "DistanceTo", mock.Anything)
	})

	t.Run("delivering agent", func(t *testing.T) {
		a, err := agent.NewAgent(kernel.NewUUID())
		require.NoError(t, err)
		dest := queryLocation(t, 1500, 200)
		require.NoError(t, a.TakeOrder(queryOrder(t, 5, 12), dest))
		a.RecordDeliveryAttempt()

		world := new(MockQueryWorld)
		world.On("PizzaAmount").Return(1).Once()
		world.On("PizzaOrders").Return([]order.Order{queryOrder(t, 5, 12)}).Once()
		world.On("DistanceTo", dest).Return(450.0).Once()

		handler := queries.NewGetAgentStatusQueryHandler(a, world)
		status, err := handler.Handle(context.Background(), queries.NewGetAgentStatusQuery())
		require.NoError(t, err)

		assert.True(t, status.Delivering)
		assert.Equal(t, order.Number(5), status.OrderNumber)
		assert.Equal(t, order.HouseNumber(12), status.House)
		assert.Equal(t, dest, status.Destination)
		assert.InDelta(t, 450.0, status.DistanceToTarget, 1e-9)
		assert.Equal(t, 1, status.Attempts)

		world.AssertExpectations(t)
	})

	t.Run("pressed agent keeps its urgency in the snapshot", func(t *testing.T) {
		a, err := agent.NewAgent(kernel.NewUUID())
		require.NoError(t, err)
		require.NoError(t, a.MarkUrgent())
		dest := queryLocation(t, 900, 600)
		require.NoError(t, a.TakeOrder(queryOrder(t, 8, 4), dest))

		world := new(MockQueryWorld)
		world.On("PizzaAmount").Return(1).Once()
		world.On("PizzaOrders").Return([]order.Order{}).Once()
		world.On("DistanceTo", dest).Return(120.0).Once()

		handler := queries.NewGetAgentStatusQueryHandler(a, world)
		status, err := handler.Handle(context.Background(), queries.NewGetAgentStatusQuery())
		require.NoError(t, err)

		assert.Equal(t, agent.Selected, status.Urgency)
		world.AssertExpectations(t)
	})

	t.Run("query not constructed via constructor", func(t *testing.T) {
		a, err := agent.NewAgent(kernel.NewUUID())
		require.NoError(t, err)
		world := new(MockQueryWorld)

		handler := queries.NewGetAgentStatusQueryHandler(a, world)
		_, err = handler.Handle(context.Background(), queries.GetAgentStatusQuery{})

		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrGetAgentStatusQueryIsNotConstructed)
		world.AssertNotCalled(t, "PizzaAmount")
	})

	t.Run("agent not constructed via constructor", func(t *testing.T) {
		world := new(MockQueryWorld)

		handler := queries.NewGetAgentStatusQueryHandler(&agent.Agent{}, world)
		_, err := handler.Handle(context.Background(), queries.NewGetAgentStatusQuery())

		require.Error(t, err)
		assert.ErrorIs(t, err, agent.ErrAgentIsNotConstructed)
		world.AssertNotCalled(t, "PizzaAmount")
	})
}
