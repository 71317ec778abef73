package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/delivery"
)

// DeliveryLogRepository defines the persistence contract for the delivery
// journal. The journal is append-mostly: records are written when a pizza
// changes hands and read back only for reporting.
type DeliveryLogRepository interface {
	// Add persists a new journal record.
	// The record must be valid and not already exist in the repository.
	Add(ctx context.Context, record *delivery.Record) error

	// GetRecent retrieves the most recent journal records, newest first,
	// up to the given limit.
	GetRecent(ctx context.Context, limit int) ([]*delivery.Record, error)
}
