package models

import (
	"time"

	"gorm.io/datatypes"
)

// Slot is a bookable time window offered by a trainer. Nothing prevents a
// trainer from publishing two slots for the same time.
type Slot struct {
	BaseModel
	TrainerID     string         `gorm:"type:uuid;index" json:"trainerId"`
	TrainerEmail  string         `gorm:"index;not null" json:"trainerEmail"`
	SlotName      string         `gorm:"not null" json:"slotName"`
	SlotTime      string         `gorm:"not null" json:"slotTime"`
	Days          datatypes.JSON `json:"days"`
	ClassName     string         `json:"className"`
	IsAvailable   bool           `gorm:"default:true" json:"isAvailable"`
	TotalBookings int            `gorm:"default:0" json:"totalBookings"`
}

// Booking records a booking attempt. Status never advances past pending;
// payment completion does not update it.
type Booking struct {
	BaseModel
	TrainerID       string        `gorm:"type:uuid;not null;index" json:"trainerId"`
	SlotID          string        `gorm:"type:uuid;not null;index" json:"slotId"`
	UserID          string        `gorm:"type:uuid;not null;index" json:"userId"`
	SelectedPackage PackageTier   `gorm:"type:varchar(20)" json:"selectedPackage"`
	Status          BookingStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"bookingStatus"`
	BookingTime     time.Time     `gorm:"not null" json:"bookingTime"`
}
