package usecase_test

import (
	"context"
	"time"

	"depotlog-service/internal/domain/entity"
	"depotlog-service/internal/domain/repository"
	"depotlog-service/pkg/metrics"
)

// Shared by every test in the package: promauto registers against the
// default registry, so the metric set must be created exactly once.
var testMetrics = metrics.NewMetrics("depotlog_test")

// Hand-written doubles for the repository interfaces. Each method is a
// function field; tests set only the ones they exercise.

type mockWaybillRepo struct {
	insert             func(ctx context.Context, waybill *entity.Waybill) (string, error)
	findByDepotSince   func(ctx context.Context, depotID string, since time.Time) ([]entity.Waybill, error)
	findByDepotBetween func(ctx context.Context, depotID string, start, end time.Time) ([]entity.Waybill, error)
	findByBusRegNo     func(ctx context.Context, busRegNo string) ([]entity.Waybill, error)
	search             func(ctx context.Context, filter entity.SearchFilter) ([]entity.Waybill, error)
}

func (m *mockWaybillRepo) Insert(ctx context.Context, waybill *entity.Waybill) (string, error) {
	return m.insert(ctx, waybill)
}
func (m *mockWaybillRepo) FindByDepotSince(ctx context.Context, depotID string, since time.Time) ([]entity.Waybill, error) {
	return m.findByDepotSince(ctx, depotID, since)
}
func (m *mockWaybillRepo) FindByDepotBetween(ctx context.Context, depotID string, start, end time.Time) ([]entity.Waybill, error) {
	return m.findByDepotBetween(ctx, depotID, start, end)
}
func (m *mockWaybillRepo) FindByBusRegNo(ctx context.Context, busRegNo string) ([]entity.Waybill, error) {
	return m.findByBusRegNo(ctx, busRegNo)
}
func (m *mockWaybillRepo) Search(ctx context.Context, filter entity.SearchFilter) ([]entity.Waybill, error) {
	return m.search(ctx, filter)
}

var _ repository.WaybillRepository = (*mockWaybillRepo)(nil)

type mockBusRepo struct {
	upsert        func(ctx context.Context, bus *entity.Bus) error
	searchByRegNo func(ctx context.Context, query string, limit int64) ([]entity.Bus, error)
}

func (m *mockBusRepo) Upsert(ctx context.Context, bus *entity.Bus) error {
	return m.upsert(ctx, bus)
}
func (m *mockBusRepo) SearchByRegNo(ctx context.Context, query string, limit int64) ([]entity.Bus, error) {
	return m.searchByRegNo(ctx, query, limit)
}

var _ repository.BusRepository = (*mockBusRepo)(nil)

type mockCrewRepo struct {
	upsert   func(ctx context.Context, member *entity.CrewMember) error
	findByID func(ctx context.Context, crewID string) (*entity.CrewMember, error)
}

func (m *mockCrewRepo) Upsert(ctx context.Context, member *entity.CrewMember) error {
	return m.upsert(ctx, member)
}
func (m *mockCrewRepo) FindByID(ctx context.Context, crewID string) (*entity.CrewMember, error) {
	return m.findByID(ctx, crewID)
}

var _ repository.CrewRepository = (*mockCrewRepo)(nil)

type mockDepotRepo struct {
	findByStationMasterID func(ctx context.Context, stationMasterID string) (*entity.Depot, error)
}

func (m *mockDepotRepo) FindByStationMasterID(ctx context.Context, stationMasterID string) (*entity.Depot, error) {
	return m.findByStationMasterID(ctx, stationMasterID)
}

var _ repository.DepotRepository = (*mockDepotRepo)(nil)

type mockPlaceRepo struct {
	searchByName func(ctx context.Context, query string, limit int64) ([]entity.Place, error)
}

func (m *mockPlaceRepo) SearchByName(ctx context.Context, query string, limit int64) ([]entity.Place, error) {
	return m.searchByName(ctx, query, limit)
}

var _ repository.PlaceRepository = (*mockPlaceRepo)(nil)
