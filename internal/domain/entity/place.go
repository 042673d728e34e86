package entity

// Place is an admin-managed destination used only for autocomplete. It has
// no foreign-key relation to waybills.
type Place struct {
	ID   string `bson:"_id,omitempty" json:"-"`
	Name string `bson:"name" json:"name"`
	Code string `bson:"code" json:"code"`
}
