package entity

// Depot is the admin-managed login record of a depot's station master.
// The reporting and ingest paths never mutate it.
type Depot struct {
	ID              string `bson:"_id,omitempty"`
	DepotID         string `bson:"depot_id"`
	DepotName       string `bson:"depot_name"`
	StationMasterID string `bson:"station_master_id"`
	Password        string `bson:"password"` // plaintext, inherited from the admin seeding contract
	Platforms       []int  `bson:"platforms,omitempty"`
	PlatformCount   int    `bson:"platform_count,omitempty"`
}

// PlatformList returns the depot's platforms: the explicit list when one is
// stored, otherwise the range [1, platform_count].
func (d *Depot) PlatformList() []int {
	if len(d.Platforms) > 0 {
		return d.Platforms
	}
	platforms := make([]int, 0, d.PlatformCount)
	for i := 1; i <= d.PlatformCount; i++ {
		platforms = append(platforms, i)
	}
	return platforms
}
