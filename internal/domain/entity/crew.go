package entity

import (
	"time"
)

// Crew roles. Conductors and drivers share one collection keyed by crew id;
// a given id is assumed single-role for its lifetime.
const (
	RoleConductor = "Conductor"
	RoleDriver    = "Driver"
)

// CrewMember is a reference record upserted on every waybill that names it.
type CrewMember struct {
	ID          string    `bson:"_id,omitempty" json:"-"`
	CrewID      string    `bson:"crew_id" json:"crew_id"`
	Name        string    `bson:"name" json:"name"`
	Phone       string    `bson:"phone" json:"phone"`
	Role        string    `bson:"role" json:"role"`
	LastUpdated time.Time `bson:"last_updated" json:"-"`
}
