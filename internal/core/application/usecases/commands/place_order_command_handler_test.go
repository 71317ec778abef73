package commands_test

import (
	"testing"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockHouseDirectory struct{ mock.Mock }

func (m *MockHouseDirectory) HouseLocations() map[order.HouseNumber]kernel.Location {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(map[order.HouseNumber]kernel.Location)
}

type MockOrderIntake struct{ mock.Mock }

func (m *MockOrderIntake) PlaceOrder(house order.HouseNumber) (order.Number, bool) {
	args := m.Called(house)
	return args.Get(0).(order.Number), args.Bool(1)
}

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPlaceOrderCommand(12)
	require.NoError(t, err)

	locHouse12, err := kernel.NewLocation(800, -300)
	require.NoError(t, err)

	houses := new(MockHouseDirectory)
	houses.On("HouseLocations").
		Return(map[order.HouseNumber]kernel.Location{12: locHouse12}).Once()

	intake := new(MockOrderIntake)
	intake.On("PlaceOrder", order.HouseNumber(12)).Return(order.Number(7), true).Once()

	handler := commands.NewPlaceOrderCommandHandler(houses, intake, discardLogger())
	number, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Number(7), number)
	houses.AssertExpectations(t)
	intake.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.PlaceOrderCommand{} // not constructed properly

	houses := new(MockHouseDirectory)
	intake := new(MockOrderIntake)

	handler := commands.NewPlaceOrderCommandHandler(houses, intake, discardLogger())
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrPlaceOrderCommandIsNotConstructed)
	intake.AssertNotCalled(t, "PlaceOrder", mock.Anything)
}

func TestPlaceOrderCommandHandler_Handle_UnknownHouse(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPlaceOrderCommand(99)
	require.NoError(t, err)

	houses := new(MockHouseDirectory)
	houses.On("HouseLocations").
		Return(map[order.HouseNumber]kernel.Location{}).Once()
	intake := new(MockOrderIntake)

	handler := commands.NewPlaceOrderCommandHandler(houses, intake, discardLogger())
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	intake.AssertNotCalled(t, "PlaceOrder", mock.Anything)
}

func TestPlaceOrderCommandHandler_Handle_HouseAlreadyWaiting(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPlaceOrderCommand(12)
	require.NoError(t, err)

	locHouse12, err := kernel.NewLocation(800, -300)
	require.NoError(t, err)

	houses := new(MockHouseDirectory)
	houses.On("HouseLocations").
		Return(map[order.HouseNumber]kernel.Location{12: locHouse12}).Once()

	intake := new(MockOrderIntake)
	intake.On("PlaceOrder", order.HouseNumber(12)).Return(order.Number(0), false).Once()

	handler := commands.NewPlaceOrderCommandHandler(houses, intake, discardLogger())
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrHouseAlreadyWaiting)
	intake.AssertExpectations(t)
}
