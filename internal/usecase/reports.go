package usecase

import (
	"context"
	"math"
	"time"

	"depotlog-service/internal/domain/entity"
	"depotlog-service/internal/domain/repository"
	"depotlog-service/pkg/logger"
	"depotlog-service/pkg/metrics"
)

// Derived movement statuses. Never persisted: always recomputed at read
// time from the scheduled and actual wall-clock strings.
const (
	StatusScheduled = "Scheduled"
	StatusOnTime    = "On Time"
	StatusDelayed   = "Delayed"
)

const searchResultCap = 100

// WaybillView is the projection shared by the live board, bus history and
// search responses. Internal fields (logged_by, record id) stay suppressed.
type WaybillView struct {
	BusRegNo        string                `json:"busRegNo"`
	ServiceCategory string                `json:"serviceCategory"`
	Origin          string                `json:"origin"`
	Destination     string                `json:"destination"`
	ScheduledTime   string                `json:"scheduledTime"`
	ActualTime      string                `json:"actualTime"`
	MovementType    string                `json:"movementType"`
	PlatformNumber  entity.PlatformNumber `json:"platformNumber"`
	DepotID         string                `json:"depot_id"`
}

// LiveWaybill is a live-board row with its computed on-time flag.
type LiveWaybill struct {
	WaybillView
	OnTime bool `json:"onTime"`
}

// LiveStats are the aggregate figures on the live board.
type LiveStats struct {
	ActiveFleet int     `json:"active_fleet"`
	Punctuality float64 `json:"punctuality"`
	Utilization int     `json:"utilization"`
}

// LiveBoard is today's depot-scoped view, newest first.
type LiveBoard struct {
	Waybills []LiveWaybill `json:"waybills"`
	Stats    LiveStats     `json:"stats"`
}

// MasterLogEntry is one row of the daily status board.
type MasterLogEntry struct {
	BusRegNo        string `json:"busRegNo"`
	ServiceCategory string `json:"serviceCategory"`
	Route           string `json:"route"`
	ScheduledTime   string `json:"scheduledTime"`
	ActualTime      string `json:"actualTime"`
	MovementType    string `json:"movementType"`
	Status          string `json:"status"`
	StatusClass     string `json:"statusClass"`
	Alerts          string `json:"alerts"`
}

// MasterLog is today's depot-scoped board in schedule order.
type MasterLog struct {
	Date     string           `json:"date"`
	Waybills []MasterLogEntry `json:"waybills"`
}

// SearchEntry is one ad-hoc search hit with its formatted ingest instant.
type SearchEntry struct {
	BusRegNo        string `json:"busRegNo"`
	ServiceCategory string `json:"serviceCategory"`
	Origin          string `json:"origin"`
	Destination     string `json:"destination"`
	ScheduledTime   string `json:"scheduledTime"`
	ActualTime      string `json:"actualTime"`
	MovementType    string `json:"movementType"`
	DepotID         string `json:"depot_id"`
	Timestamp       string `json:"timestamp"`
}

// SearchResult carries the hits and their count.
type SearchResult struct {
	Count    int           `json:"count"`
	Waybills []SearchEntry `json:"waybills"`
}

// SearchQuery are the optional ad-hoc search filters as submitted.
type SearchQuery struct {
	Date         string // YYYY-MM-DD; malformed values are silently ignored
	BusRegNo     string
	DepotID      string
	MovementType string
}

// DepotReports is the reporting core: depot-scoped query building and
// derived statistics over the waybill log.
type DepotReports struct {
	waybills repository.WaybillRepository
	loc      *time.Location
	log      logger.Logger
	metrics  *metrics.Metrics
	now      func() time.Time
}

// NewDepotReports creates a new reporting engine. Day windows are computed
// in loc so "today" does not drift with the host's locale.
func NewDepotReports(waybills repository.WaybillRepository, loc *time.Location, log logger.Logger, m *metrics.Metrics) *DepotReports {
	return &DepotReports{
		waybills: waybills,
		loc:      loc,
		log:      log,
		metrics:  m,
		now:      time.Now,
	}
}

// LiveBoard returns the session depot's movements since local midnight,
// newest first, with punctuality and fleet stats. The midnight lower bound
// resets the board each day; it is a today-only view, not a history.
func (d *DepotReports) LiveBoard(ctx context.Context, session *entity.Session) (*LiveBoard, error) {
	if session == nil {
		return nil, entity.ErrUnauthorized
	}
	timer := d.metrics.QueryDuration.WithLabelValues("live_board")
	start := d.now()
	defer func() { timer.Observe(d.now().Sub(start).Seconds()) }()

	midnight := startOfDay(d.now().In(d.loc))
	waybills, err := d.waybills.FindByDepotSince(ctx, session.DepotID, midnight)
	if err != nil {
		return nil, err
	}

	board := &LiveBoard{Waybills: make([]LiveWaybill, 0, len(waybills))}
	onTimeCount := 0
	fleet := make(map[string]struct{})

	for _, wb := range waybills {
		onTime := IsOnTime(wb.ScheduledTime, wb.ActualTime)
		if onTime {
			onTimeCount++
		}
		fleet[wb.BusRegNo] = struct{}{}
		board.Waybills = append(board.Waybills, LiveWaybill{
			WaybillView: viewOf(&wb),
			OnTime:      onTime,
		})
	}

	board.Stats = LiveStats{
		ActiveFleet: len(fleet),
		Punctuality: Punctuality(onTimeCount, len(waybills)),
		Utilization: 76, // static placeholder pending EPKM integration
	}
	return board, nil
}

// MasterLog returns today's depot movements in schedule order with the
// derived per-row status.
func (d *DepotReports) MasterLog(ctx context.Context, session *entity.Session) (*MasterLog, error) {
	if session == nil {
		return nil, entity.ErrUnauthorized
	}
	timer := d.metrics.QueryDuration.WithLabelValues("master_log")
	start := d.now()
	defer func() { timer.Observe(d.now().Sub(start).Seconds()) }()

	now := d.now().In(d.loc)
	dayStart, dayEnd := dayRange(now)
	waybills, err := d.waybills.FindByDepotBetween(ctx, session.DepotID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	log := &MasterLog{
		Date:     now.Format("Jan 02, 2006"),
		Waybills: make([]MasterLogEntry, 0, len(waybills)),
	}
	for _, wb := range waybills {
		status := MovementStatus(wb.ScheduledTime, wb.ActualTime)
		actual := wb.ActualTime
		if actual == "" {
			actual = "-"
		}
		log.Waybills = append(log.Waybills, MasterLogEntry{
			BusRegNo:        wb.BusRegNo,
			ServiceCategory: wb.ServiceCategory,
			Route:           wb.Origin + " - " + wb.Destination,
			ScheduledTime:   wb.ScheduledTime,
			ActualTime:      actual,
			MovementType:    wb.MovementType,
			Status:          status,
			StatusClass:     statusClass(status),
			Alerts:          "PF-" + wb.PlatformNumber.String(),
		})
	}
	return log, nil
}

// BusHistory returns every waybill logged for a registration, newest first.
// This read deliberately crosses depot boundaries: a vehicle's lifetime
// history is not owned by any single depot.
func (d *DepotReports) BusHistory(ctx context.Context, busRegNo string) ([]WaybillView, error) {
	waybills, err := d.waybills.FindByBusRegNo(ctx, busRegNo)
	if err != nil {
		return nil, err
	}
	views := make([]WaybillView, 0, len(waybills))
	for _, wb := range waybills {
		views = append(views, viewOf(&wb))
	}
	return views, nil
}

// Search runs an ad-hoc filtered query, newest first, capped at 100 hits.
func (d *DepotReports) Search(ctx context.Context, query SearchQuery) (*SearchResult, error) {
	timer := d.metrics.QueryDuration.WithLabelValues("search")
	start := d.now()
	defer func() { timer.Observe(d.now().Sub(start).Seconds()) }()

	filter := entity.SearchFilter{
		BusRegNo:     query.BusRegNo,
		DepotID:      query.DepotID,
		MovementType: query.MovementType,
		Limit:        searchResultCap,
	}
	if query.Date != "" {
		if day, err := time.ParseInLocation("2006-01-02", query.Date, d.loc); err == nil {
			dayStart, dayEnd := dayRange(day)
			filter.From = &dayStart
			filter.To = &dayEnd
		}
		// malformed dates are dropped, not rejected
	}

	waybills, err := d.waybills.Search(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := &SearchResult{Waybills: make([]SearchEntry, 0, len(waybills))}
	for _, wb := range waybills {
		entry := SearchEntry{
			BusRegNo:        wb.BusRegNo,
			ServiceCategory: wb.ServiceCategory,
			Origin:          wb.Origin,
			Destination:     wb.Destination,
			ScheduledTime:   wb.ScheduledTime,
			ActualTime:      wb.ActualTime,
			MovementType:    wb.MovementType,
			DepotID:         wb.DepotID,
		}
		if !wb.Timestamp.IsZero() {
			entry.Timestamp = wb.Timestamp.In(d.loc).Format("2006-01-02 15:04")
		}
		result.Waybills = append(result.Waybills, entry)
	}
	result.Count = len(result.Waybills)
	return result, nil
}

// MovementStatus derives a waybill's status from its wall-clock strings.
// The lateness check runs before the absence check, so a record with no
// actual time is always Scheduled, never Delayed.
//
// Comparison is lexical. Both fields are same-format zero-padded 24-hour
// strings within one day, where lexical order matches chronological order;
// cross-midnight schedules are not represented.
func MovementStatus(scheduledTime, actualTime string) string {
	if actualTime > scheduledTime {
		return StatusDelayed
	}
	if actualTime == "" {
		return StatusScheduled
	}
	return StatusOnTime
}

// IsOnTime reports whether a movement ran at or before schedule. Records
// missing either time do not count as on time.
func IsOnTime(scheduledTime, actualTime string) bool {
	return scheduledTime != "" && actualTime != "" && actualTime <= scheduledTime
}

// Punctuality is the on-time percentage rounded to one decimal, 0 for an
// empty day.
func Punctuality(onTimeCount, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(onTimeCount)/float64(total)*1000) / 10
}

func statusClass(status string) string {
	switch status {
	case StatusDelayed:
		return "bg-danger"
	case StatusScheduled:
		return "bg-info"
	default:
		return "bg-success"
	}
}

func viewOf(wb *entity.Waybill) WaybillView {
	return WaybillView{
		BusRegNo:        wb.BusRegNo,
		ServiceCategory: wb.ServiceCategory,
		Origin:          wb.Origin,
		Destination:     wb.Destination,
		ScheduledTime:   wb.ScheduledTime,
		ActualTime:      wb.ActualTime,
		MovementType:    wb.MovementType,
		PlatformNumber:  wb.PlatformNumber,
		DepotID:         wb.DepotID,
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayRange(t time.Time) (time.Time, time.Time) {
	start := startOfDay(t)
	end := time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
	return start, end
}
