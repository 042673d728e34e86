package entity

// Session is the identity of an authenticated station master. It is held
// server-side, keyed by an opaque token carried in a cookie, and threaded
// explicitly into every gated operation.
type Session struct {
	Token           string `json:"-"`
	DepotID         string `json:"depot_id"`
	StationMasterID string `json:"station_master_id"`
	DepotName       string `json:"depot_name"`
	Platforms       []int  `json:"platforms"`
}
