package repository

import (
	"context"

	"depotlog-service/internal/domain/entity"
)

// CrewRepository defines the interface for crew reference records.
type CrewRepository interface {
	// Upsert creates or refreshes the record keyed by crew id.
	Upsert(ctx context.Context, member *entity.CrewMember) error

	// FindByID returns the member or entity.ErrNotFound.
	FindByID(ctx context.Context, crewID string) (*entity.CrewMember, error)
}
