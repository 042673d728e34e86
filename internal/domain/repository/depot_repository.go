package repository

import (
	"context"

	"depotlog-service/internal/domain/entity"
)

// DepotRepository defines the interface for depot login records. The service
// only reads them; creation is an out-of-band admin action.
type DepotRepository interface {
	// FindByStationMasterID looks up by station master id, case-insensitive
	// exact match. Returns entity.ErrNotFound when absent.
	FindByStationMasterID(ctx context.Context, stationMasterID string) (*entity.Depot, error)
}
