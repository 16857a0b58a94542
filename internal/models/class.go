package models

// Class booking counters are keyed by name, matching the lookup payments
// perform. Names are not unique-constrained; a collision double-counts.
type Class struct {
	BaseModel
	Name         string `gorm:"index;not null" json:"name"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	BookingCount int    `gorm:"default:0" json:"bookingCount"`
}
