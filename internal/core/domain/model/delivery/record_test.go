package delivery_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzeria/internal/core/domain/model/agent"
	"pizzeria/internal/core/domain/model/delivery"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
)

func TestNewRecord(t *testing.T) {
	ord, err := order.NewOrder(7, 3)
	require.NoError(t, err)
	deliveredAt := time.Date(2026, 8, 26, 12, 30, 0, 0, time.UTC)

	t.Run("should create record from delivered order", func(t *testing.T) {
		id := kernel.NewUUID()

		record, err := delivery.NewRecord(id, ord, agent.Selected, 250.5, 2, deliveredAt)

		require.NoError(t, err)
		require.NoError(t, record.Validate())
		assert.True(t, record.ID().IsEqual(id))
		assert.Equal(t, order.Number(7), record.OrderNumber())
		assert.Equal(t, order.HouseNumber(3), record.House())
		assert.Equal(t, agent.Selected, record.Urgency())
		assert.InDelta(t, 250.5, record.Distance(), 0)
		assert.Equal(t, 2, record.Attempts())
		assert.Equal(t, deliveredAt, record.DeliveredAt())
	})

	t.Run("should reject unconstructed order", func(t *testing.T) {
		_, err := delivery.NewRecord(kernel.NewUUID(), order.Order{}, agent.Normal, 100, 1, deliveredAt)
		assert.Error(t, err)
	})
}

func TestRestoreRecord(t *testing.T) {
	deliveredAt := time.Date(2026, 8, 26, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name        string
		id          kernel.UUID
		number      order.Number
		house       order.HouseNumber
		urgency     agent.Urgency
		distance    float64
		attempts    int
		deliveredAt time.Time
		wantErr     bool
	}{
		{
			name:        "valid record",
			id:          kernel.NewUUID(),
			number:      1,
			house:       2,
			urgency:     agent.Normal,
			distance:    120,
			attempts:    1,
			deliveredAt: deliveredAt,
		},
		{
			name:        "zero distance is valid",
			id:          kernel.NewUUID(),
			number:      1,
			house:       2,
			urgency:     agent.Arrived,
			distance:    0,
			attempts:    1,
			deliveredAt: deliveredAt,
		},
		{
			name:        "invalid id",
			id:          kernel.UUID{},
			number:      1,
			house:       2,
			urgency:     agent.Normal,
			distance:    120,
			attempts:    1,
			deliveredAt: deliveredAt,
			wantErr:     true,
		},
		{
			name:        "negative order number",
			id:          kernel.NewUUID(),
			number:      -1,
			house:       2,
			urgency:     agent.Normal,
			distance:    120,
			attempts:    1,
			deliveredAt: deliveredAt,
			wantErr:     true,
		},
		{
			name:        "unknown urgency",
			id:          kernel.NewUUID(),
			number:      1,
			house:       2,
			urgency:     agent.Unknown,
			distance:    120,
			attempts:    1,
			deliveredAt: deliveredAt,
			wantErr:     true,
		},
		{
			name:        "negative distance",
			id:          kernel.NewUUID(),
			number:      1,
			house:       2,
			urgency:     agent.Normal,
			distance:    -5,
			attempts:    1,
			deliveredAt: deliveredAt,
			wantErr:     true,
		},
		{
			name:        "NaN distance",
			id:          kernel.NewUUID(),
			number:      1,
			house:       2,
			urgency:     agent.Normal,
			distance:    math.NaN(),
			attempts:    1,
			deliveredAt: deliveredAt,
			wantErr:     true,
		},
		{
			name:        "negative attempts",
			id:          kernel.NewUUID(),
			number:      1,
			house:       2,
			urgency:     agent.Normal,
			distance:    120,
			attempts:    -1,
			deliveredAt: deliveredAt,
			wantErr:     true,
		},
		{
			name:     "zero delivered time",
			id:       kernel.NewUUID(),
			number:   1,
			house:    2,
			urgency:  agent.Normal,
			distance: 120,
			attempts: 1,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := delivery.RestoreRecord(
				tt.id, tt.number, tt.house, tt.urgency, tt.distance, tt.attempts, tt.deliveredAt)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, record)
			} else {
				require.NoError(t, err)
				require.NoError(t, record.Validate())
			}
		})
	}
}

func TestRecord_Validate(t *testing.T) {
	t.Run("should fail for nil record", func(t *testing.T) {
		var record *delivery.Record
		assert.Equal(t, delivery.ErrRecordIsNotConstructed, record.Validate())
	})

	t.Run("should fail for zero value record", func(t *testing.T) {
		var record delivery.Record
		assert.Equal(t, delivery.ErrRecordIsNotConstructed, record.Validate())
	})
}

func TestRecord_IsEqual(t *testing.T) {
	ord, err := order.NewOrder(1, 1)
	require.NoError(t, err)
	deliveredAt := time.Now()

	r1, err := delivery.NewRecord(kernel.NewUUID(), ord, agent.Normal, 10, 1, deliveredAt)
	require.NoError(t, err)
	r2, err := delivery.NewRecord(kernel.NewUUID(), ord, agent.Normal, 10, 1, deliveredAt)
	require.NoError(t, err)

	assert.True(t, r1.IsEqual(r1))
	assert.False(t, r1.IsEqual(r2))
	assert.False(t, r1.IsEqual(nil))
}
