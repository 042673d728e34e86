package entity

import (
	"time"
)

// Movement types a station master can log.
const (
	MovementArrival   = "Arrival"
	MovementDeparture = "Departure"
)

// Waybill is one movement event logged at a depot. Records are append-only:
// created once at ingest and never updated or deleted by the service.
type Waybill struct {
	ID              string         `bson:"_id,omitempty" json:"-"`
	BusRegNo        string         `bson:"busRegNo" json:"busRegNo"`
	ServiceCategory string         `bson:"serviceCategory" json:"serviceCategory"`
	MovementType    string         `bson:"movementType" json:"movementType"`
	Origin          string         `bson:"origin" json:"origin"`
	Destination     string         `bson:"destination" json:"destination"`
	ViaRoute        string         `bson:"viaRoute,omitempty" json:"viaRoute,omitempty"`
	PlatformNumber  PlatformNumber `bson:"platformNumber,omitempty" json:"platformNumber"`
	ScheduledTime   string         `bson:"scheduledTime" json:"scheduledTime"`
	ActualTime      string         `bson:"actualTime,omitempty" json:"actualTime"`
	ConductorName   string         `bson:"conductorName,omitempty" json:"conductorName,omitempty"`
	ConductorID     string         `bson:"conductorId,omitempty" json:"conductorId,omitempty"`
	ConductorPhone  string         `bson:"conductorPhone,omitempty" json:"conductorPhone,omitempty"`
	DriverName      string         `bson:"driverName,omitempty" json:"driverName,omitempty"`
	DriverID        string         `bson:"driverId,omitempty" json:"driverId,omitempty"`
	DriverPhone     string         `bson:"driverPhone,omitempty" json:"driverPhone,omitempty"`

	// DepotID is the owning depot. It is stamped from the session at ingest,
	// never taken from the client while authenticated: a waybill belongs to
	// the depot that logged it, not to whatever the route fields claim.
	DepotID  string `bson:"depot_id,omitempty" json:"depot_id"`
	LoggedBy string `bson:"logged_by,omitempty" json:"-"`

	// Timestamp is the server ingest instant and the authoritative ordering key.
	Timestamp time.Time `bson:"timestamp" json:"-"`
}

// SearchFilter narrows a waybill search. Zero-valued fields are not applied.
type SearchFilter struct {
	BusRegNo     string // case-insensitive substring
	DepotID      string // exact
	MovementType string // exact
	From         *time.Time
	To           *time.Time
	Limit        int64
}
