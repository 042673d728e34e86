package repository

import (
	"context"
	"time"

	"depotlog-service/internal/domain/entity"
)

// WaybillRepository defines the interface for waybill event operations.
// Waybills are append-only; there is no update or delete path.
type WaybillRepository interface {
	// Insert persists a new waybill and returns its id.
	Insert(ctx context.Context, waybill *entity.Waybill) (string, error)

	// FindByDepotSince returns a depot's waybills with timestamp >= since,
	// newest first.
	FindByDepotSince(ctx context.Context, depotID string, since time.Time) ([]entity.Waybill, error)

	// FindByDepotBetween returns a depot's waybills with timestamp in
	// [start, end], ascending by scheduled time.
	FindByDepotBetween(ctx context.Context, depotID string, start, end time.Time) ([]entity.Waybill, error)

	// FindByBusRegNo returns every waybill for a registration across all
	// depots, newest first.
	FindByBusRegNo(ctx context.Context, busRegNo string) ([]entity.Waybill, error)

	// Search applies the filter, newest first, capped at filter.Limit.
	Search(ctx context.Context, filter entity.SearchFilter) ([]entity.Waybill, error)
}
