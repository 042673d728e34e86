package repository

import (
	"context"

	"depotlog-service/internal/domain/entity"
)

// PlaceRepository defines the interface for place reference records.
type PlaceRepository interface {
	// SearchByName matches place names by case-insensitive substring.
	SearchByName(ctx context.Context, query string, limit int64) ([]entity.Place, error)
}
