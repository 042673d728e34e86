package repository

import (
	"context"

	"depotlog-service/internal/domain/entity"
)

// BusRepository defines the interface for bus reference records.
type BusRepository interface {
	// Upsert creates or refreshes the record keyed by registration number.
	Upsert(ctx context.Context, bus *entity.Bus) error

	// SearchByRegNo matches registrations by case-insensitive substring.
	SearchByRegNo(ctx context.Context, query string, limit int64) ([]entity.Bus, error)
}
