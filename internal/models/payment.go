package models

import "time"

// Payment is append-only; aggregate stats are derived from it.
type Payment struct {
	BaseModel
	UserEmail       string      `gorm:"index;not null" json:"userEmail"`
	UserName        string      `json:"userName"`
	ClassName       string      `json:"className"`
	SlotID          string      `gorm:"type:uuid" json:"slotId"`
	SelectedPackage PackageTier `gorm:"type:varchar(20)" json:"selectedPackage"`
	Price           int64       `gorm:"not null" json:"price"` // minor currency units
	Date            time.Time   `gorm:"not null" json:"date"`
	TransactionID   string      `json:"transactionId"`
}
