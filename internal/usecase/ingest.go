package usecase

import (
	"context"
	"time"

	"depotlog-service/internal/domain/entity"
	"depotlog-service/internal/domain/repository"
	"depotlog-service/pkg/logger"
	"depotlog-service/pkg/metrics"
)

// WaybillPayload is the movement event as submitted by the dashboard form.
// Field names match the form's JSON body. DepotID and LoggedBy are only
// honored when no session is present; an authenticated submission always
// gets both stamped from the session.
type WaybillPayload struct {
	BusRegNo        string                `json:"busRegNo"`
	ServiceCategory string                `json:"serviceCategory"`
	MovementType    string                `json:"movementType"`
	Origin          string                `json:"origin"`
	Destination     string                `json:"destination"`
	ViaRoute        string                `json:"viaRoute"`
	PlatformNumber  entity.PlatformNumber `json:"platformNumber"`
	ScheduledTime   string                `json:"scheduledTime"`
	ActualTime      string                `json:"actualTime"`
	ConductorName   string                `json:"conductorName"`
	ConductorID     string                `json:"conductorId"`
	ConductorPhone  string                `json:"conductorPhone"`
	DriverName      string                `json:"driverName"`
	DriverID        string                `json:"driverId"`
	DriverPhone     string                `json:"driverPhone"`
	DepotID         string                `json:"depot_id"`
	LoggedBy        string                `json:"logged_by"`
}

// IsEmpty reports whether the payload carries nothing worth recording.
func (p *WaybillPayload) IsEmpty() bool {
	return p.BusRegNo == "" && p.MovementType == "" && p.Origin == "" &&
		p.Destination == "" && p.ScheduledTime == "" && p.ConductorID == "" &&
		p.DriverID == ""
}

// WaybillIngest validates, normalizes and persists movement events, and
// keeps the bus and crew reference collections fresh as a side effect.
type WaybillIngest struct {
	waybills repository.WaybillRepository
	buses    repository.BusRepository
	crew     repository.CrewRepository
	log      logger.Logger
	metrics  *metrics.Metrics
	now      func() time.Time
}

// NewWaybillIngest creates a new waybill ingest
func NewWaybillIngest(waybills repository.WaybillRepository, buses repository.BusRepository, crew repository.CrewRepository, log logger.Logger, m *metrics.Metrics) *WaybillIngest {
	return &WaybillIngest{
		waybills: waybills,
		buses:    buses,
		crew:     crew,
		log:      log,
		metrics:  m,
		now:      time.Now,
	}
}

// Submit records one movement event. The reference upserts are independent
// and individually idempotent, so no rollback is attempted when the final
// insert fails: a retry from scratch is safe.
func (w *WaybillIngest) Submit(ctx context.Context, payload *WaybillPayload, session *entity.Session) (string, error) {
	if payload == nil || payload.IsEmpty() {
		return "", entity.ErrBadRequest
	}

	if payload.BusRegNo != "" {
		bus := &entity.Bus{
			BusRegNo:        payload.BusRegNo,
			ServiceCategory: payload.ServiceCategory,
		}
		if err := w.buses.Upsert(ctx, bus); err != nil {
			return "", err
		}
	}

	if payload.ConductorID != "" {
		conductor := &entity.CrewMember{
			CrewID: payload.ConductorID,
			Name:   payload.ConductorName,
			Phone:  payload.ConductorPhone,
			Role:   entity.RoleConductor,
		}
		if err := w.crew.Upsert(ctx, conductor); err != nil {
			return "", err
		}
	}

	if payload.DriverID != "" {
		driver := &entity.CrewMember{
			CrewID: payload.DriverID,
			Name:   payload.DriverName,
			Phone:  payload.DriverPhone,
			Role:   entity.RoleDriver,
		}
		if err := w.crew.Upsert(ctx, driver); err != nil {
			return "", err
		}
	}

	waybill := &entity.Waybill{
		BusRegNo:        payload.BusRegNo,
		ServiceCategory: payload.ServiceCategory,
		MovementType:    payload.MovementType,
		Origin:          payload.Origin,
		Destination:     payload.Destination,
		ViaRoute:        payload.ViaRoute,
		PlatformNumber:  payload.PlatformNumber,
		ScheduledTime:   payload.ScheduledTime,
		ActualTime:      payload.ActualTime,
		ConductorName:   payload.ConductorName,
		ConductorID:     payload.ConductorID,
		ConductorPhone:  payload.ConductorPhone,
		DriverName:      payload.DriverName,
		DriverID:        payload.DriverID,
		DriverPhone:     payload.DriverPhone,
		DepotID:         payload.DepotID,
		LoggedBy:        payload.LoggedBy,
		Timestamp:       w.now(),
	}

	// Tenancy boundary: an authenticated submission is owned by the
	// session's depot no matter what the payload claims.
	if session != nil {
		waybill.DepotID = session.DepotID
		waybill.LoggedBy = session.StationMasterID
	}

	id, err := w.waybills.Insert(ctx, waybill)
	if err != nil {
		w.metrics.ErrorsCount.WithLabelValues("waybill_insert").Inc()
		return "", err
	}

	w.log.Info("Waybill logged",
		"bus_reg_no", waybill.BusRegNo,
		"movement_type", waybill.MovementType,
		"depot_id", waybill.DepotID,
	)
	w.metrics.WaybillsIngested.Inc()
	return id, nil
}
