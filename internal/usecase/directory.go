package usecase

import (
	"context"
	"strings"

	"depotlog-service/internal/domain/entity"
	"depotlog-service/internal/domain/repository"
)

const autocompleteLimit = 10

// Directory serves the autocomplete lookups over the bus, place and crew
// reference collections.
type Directory struct {
	buses  repository.BusRepository
	places repository.PlaceRepository
	crew   repository.CrewRepository
}

// NewDirectory creates a new directory
func NewDirectory(buses repository.BusRepository, places repository.PlaceRepository, crew repository.CrewRepository) *Directory {
	return &Directory{
		buses:  buses,
		places: places,
		crew:   crew,
	}
}

// SearchBuses matches registrations by case-insensitive substring, at most
// ten hits. An empty query returns an empty result, not an error.
func (d *Directory) SearchBuses(ctx context.Context, query string) ([]entity.Bus, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []entity.Bus{}, nil
	}
	return d.buses.SearchByRegNo(ctx, query, autocompleteLimit)
}

// SearchPlaces matches place names by case-insensitive substring, at most
// ten hits. An empty query returns an empty result, not an error.
func (d *Directory) SearchPlaces(ctx context.Context, query string) ([]entity.Place, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []entity.Place{}, nil
	}
	return d.places.SearchByName(ctx, query, autocompleteLimit)
}

// CrewByID returns the crew member behind an id, entity.ErrNotFound when
// none exists. Backs the crew auto-fill on the waybill form.
func (d *Directory) CrewByID(ctx context.Context, crewID string) (*entity.CrewMember, error) {
	return d.crew.FindByID(ctx, crewID)
}
