package models

import (
	"github.com/lib/pq"
)

type User struct {
	BaseModel
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	Name         string         `gorm:"not null" json:"name"`
	PasswordHash string         `json:"-"`
	Role         UserRole       `gorm:"type:varchar(20);not null;default:'member'" json:"role"`
	Skills       pq.StringArray `gorm:"type:text[]" json:"skills"`
	Image        string         `json:"image"`
	Age          int            `json:"age"`
}
