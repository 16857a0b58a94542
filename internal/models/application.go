package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// TrainerApplication is a live (pending) request to become a trainer.
// Confirm and reject both remove the record; there is no in-place terminal
// state on this table.
type TrainerApplication struct {
	BaseModel
	Name            string            `gorm:"not null" json:"name"`
	Email           string            `gorm:"index;not null" json:"email"`
	Age             int               `json:"age"`
	Image           string            `json:"image"`
	Skills          pq.StringArray    `gorm:"type:text[]" json:"skills"`
	AvailableDays   datatypes.JSON    `json:"availableDays"`
	AvailableTime   string            `json:"availableTime"`
	ExperienceYears int               `json:"experienceYears"`
	Biography       string            `json:"biography"`
	Status          ApplicationStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
}

// RejectedApplication is the immutable audit record of a rejection.
type RejectedApplication struct {
	BaseModel
	Name      string            `gorm:"not null" json:"name"`
	Email     string            `gorm:"index;not null" json:"email"`
	Feedback  string            `gorm:"not null" json:"feedback"`
	Status    ApplicationStatus `gorm:"type:varchar(20);not null;default:'Rejected'" json:"status"`
	AppliedID string            `gorm:"type:uuid" json:"appliedId"`
	Timestamp time.Time         `gorm:"not null" json:"timestamp"`
}
