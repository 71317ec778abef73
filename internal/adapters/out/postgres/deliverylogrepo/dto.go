// Package deliverylogrepo provides data transfer objects and mapping functions
// for the delivery journal. This package implements the repository pattern for
// the journal aggregate, handling the conversion between domain records and
// database rows.
package deliverylogrepo

import (
	"time"

	"pizzeria/internal/core/domain/model/agent"
	"pizzeria/internal/core/domain/model/delivery"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// DeliveryRecordDTO represents the database structure for persisting journal
// records. The delivered_at column is indexed because the journal is always
// read newest first.
type DeliveryRecordDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber int
	House       int
	Urgency     int
	Distance    float64
	Attempts    int
	DeliveredAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for journal records.
// Overrides GORM's default naming convention to use "deliveries".
func (DeliveryRecordDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a journal record to its database representation.
func fromDomain(record *delivery.Record) DeliveryRecordDTO {
	return DeliveryRecordDTO{
		ID:          record.ID().Bytes(),
		OrderNumber: int(record.OrderNumber()),
		House:       int(record.House()),
		Urgency:     int(record.Urgency()),
		Distance:    record.Distance(),
		Attempts:    record.Attempts(),
		DeliveredAt: record.DeliveredAt(),
	}
}

// toDomain converts a database DTO to a journal record.
// Reconstructs the complete record using RestoreRecord.
func toDomain(dto DeliveryRecordDTO) (*delivery.Record, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return delivery.RestoreRecord(
		id,
		order.Number(dto.OrderNumber),
		order.HouseNumber(dto.House),
		agent.Urgency(dto.Urgency),
		dto.Distance,
		dto.Attempts,
		dto.DeliveredAt,
	)
}
