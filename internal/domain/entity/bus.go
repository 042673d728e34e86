package entity

import (
	"time"
)

// Bus is a reference record refreshed implicitly by every waybill that
// names its registration.
type Bus struct {
	ID              string    `bson:"_id,omitempty" json:"-"`
	BusRegNo        string    `bson:"bus_reg_no" json:"bus_reg_no"`
	ServiceCategory string    `bson:"service_category" json:"service_category"`
	LastUpdated     time.Time `bson:"last_updated" json:"-"`
}
