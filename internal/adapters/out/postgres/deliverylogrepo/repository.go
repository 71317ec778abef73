package deliverylogrepo

import (
	"context"

	"pizzeria/internal/core/domain/model/delivery"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryLogRepository implements DeliveryLogRepository using GORM.
type GormDeliveryLogRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryLogRepository creates a new GORM delivery journal repository.
func NewGormDeliveryLogRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryLogRepository {
	return &GormDeliveryLogRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new journal record to the database.
func (r *GormDeliveryLogRepository) Add(ctx context.Context, record *delivery.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

// GetRecent retrieves the most recent journal records, newest first.
func (r *GormDeliveryLogRepository) GetRecent(ctx context.Context, limit int) ([]*delivery.Record, error) {
	if limit <= 0 {
		return nil, errs.NewValueIsInvalidError("limit")
	}

	var dtos []DeliveryRecordDTO
	if err := r.db.WithContext(ctx).Order("delivered_at DESC").Limit(limit).Find(&dtos).Error; err != nil {
		return nil, err
	}

	records := make([]*delivery.Record, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}
