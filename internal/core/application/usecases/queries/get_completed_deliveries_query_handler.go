package queries

import (
	"context"
	"time"

	"pizzeria/internal/core/domain/model/agent"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCompletedDeliveriesQueryHandler reads the delivery journal from the
// database. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
//
// Example:
//
//	handler := NewGetCompletedDeliveriesQueryHandler(db)
//	query, _ := NewGetCompletedDeliveriesQuery(20)
//
//	deliveries, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to read journal: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d deliveries\n", len(deliveries))
type GetCompletedDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetCompletedDeliveriesQueryHandler creates a handler for journal
// retrieval queries. Requires a GORM database connection.
func NewGetCompletedDeliveriesQueryHandler(db *gorm.DB) GetCompletedDeliveriesQueryHandler {
	return GetCompletedDeliveriesQueryHandler{db: db}
}

// Handle executes the query to retrieve recent journal entries.
// Returns at most the query's limit of entries, newest first.
// Converts database types to domain types for consistency.
func (h GetCompletedDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetCompletedDeliveriesQuery,
) ([]GetCompletedDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]GetCompletedDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			house,
			urgency,
			distance,
			attempts,
			delivered_at
		FROM deliveries
		ORDER BY delivered_at DESC
		LIMIT ?
	`, query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetCompletedDeliveriesQueryResponse
		var id uuid.UUID
		var orderNumber, house, urgency int
		var deliveredAt time.Time

		err = rows.Scan(
			&id,
			&orderNumber,
			&house,
			&urgency,
			&entry.Distance,
			&entry.Attempts,
			&deliveredAt,
		)
		if err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.ID = entryID

		entryUrgency := agent.Urgency(urgency)
		if urgencyErr := entryUrgency.Validate(); urgencyErr != nil {
			return nil, urgencyErr
		}
		entry.Urgency = entryUrgency

		entry.OrderNumber = order.Number(orderNumber)
		entry.House = order.HouseNumber(house)
		entry.DeliveredAt = deliveredAt
		deliveries = append(deliveries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
