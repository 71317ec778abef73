package queries_test

import (
	"context"
	"testing"

	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetActiveOrdersQueryHandler_Handle(t *testing.T) {
	t.Run("returns outstanding orders in placement order", func(t *testing.T) {
		world := new(MockQueryWorld)
		world.On("HouseLocations").Return(map[order.HouseNumber]kernel.Location{
			3: queryLocation(t, 100, 200),
			7: queryLocation(t, 1500, 900),
		}).Once()
		world.On("PizzaOrders").Return([]order.Order{
			queryOrder(t, 1, 3),
			queryOrder(t, 2, 7),
		}).Once()
		world.On("HouseTimeLeft", order.HouseNumber(3)).Return(80.0).Once()
		world.On("HouseTimeLeft", order.HouseNumber(7)).Return(45.5).Once()

		handler := queries.NewGetActiveOrdersQueryHandler(world)
		result, err := handler.Handle(context.Background(), queries.NewGetActiveOrdersQuery())
		require.NoError(t, err)

		require.Len(t, result, 2)
		assert.Equal(t, order.Number(1), result[0].OrderNumber)
		assert.Equal(t, order.HouseNumber(3), result[0].House)
		assert.Equal(t, queryLocation(t, 100, 200), result[0].Location)
		assert.InDelta(t, 80.0, result[0].TimeLeft, 1e-9)

		assert.Equal(t, order.Number(2), result[1].OrderNumber)
		assert.Equal(t, order.HouseNumber(7), result[1].House)
		assert.InDelta(t, 45.5, result[1].TimeLeft, 1e-9)

		world.AssertExpectations(t)
	})

	t.Run("omits orders whose house the town cannot place", func(t *testing.T) {
		world := new(MockQueryWorld)
		world.On("HouseLocations").Return(map[order.HouseNumber]kernel.Location{
			3: queryLocation(t, 100, 200),
		}).Once()
		world.On("PizzaOrders").Return([]order.Order{
			queryOrder(t, 1, 3),
			queryOrder(t, 2, 7),
		}).Once()
		world.On("HouseTimeLeft", order.HouseNumber(3)).Return(80.0).Once()

		handler := queries.NewGetActiveOrdersQueryHandler(world)
		result, err := handler.Handle(context.Background(), queries.NewGetActiveOrdersQuery())
		require.NoError(t, err)

		require.Len(t, result, 1)
		assert.Equal(t, order.Number(1), result[0].OrderNumber)

		world.AssertExpectations(t)
		world.AssertNotCalled(t, "HouseTimeLeft", order.HouseNumber(7))
	})

	t.Run("no outstanding orders", func(t *testing.T) {
		world := new(MockQueryWorld)
		world.On("HouseLocations").Return(map[order.HouseNumber]kernel.Location{
			3: queryLocation(t, 100, 200),
		}).Once()
		world.On("PizzaOrders").Return([]order.Order{}).Once()

		handler := queries.NewGetActiveOrdersQueryHandler(world)
		result, err := handler.Handle(context.Background(), queries.NewGetActiveOrdersQuery())
		require.NoError(t, err)

		assert.NotNil(t, result)
		assert.Empty(t, result)

		world.AssertExpectations(t)
	})

	t.Run("query not constructed via constructor", func(t *testing.T) {
		world := new(MockQueryWorld)

		handler := queries.NewGetActiveOrdersQueryHandler(world)
		result, err := handler.Handle(context.Background(), queries.GetActiveOrdersQuery{})

		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrGetActiveOrdersQueryIsNotConstructed)
		assert.Nil(t, result)
		world.AssertNotCalled(t, "HouseLocations")
	})
}
