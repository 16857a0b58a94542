package dto

import "time"

type CreatePaymentIntentRequest struct {
	SlotID  string `json:"slotId"`
	Package string `json:"package" validate:"package_tier"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
	Amount       int64  `json:"amount"`
}

type RecordPaymentRequest struct {
	UserEmail       string `json:"userEmail" validate:"required,email"`
	UserName        string `json:"userName"`
	ClassName       string `json:"className" validate:"required"`
	SlotID          string `json:"slotId" validate:"omitempty,uuid"`
	SelectedPackage string `json:"selectedPackage" validate:"package_tier"`
	Price           int64  `json:"price" validate:"required,min=1"`
	TransactionID   string `json:"transactionId"`
}

type RecordPaymentResponse struct {
	Success      bool   `json:"success"`
	PaymentID    string `json:"insertedId"`
	ClassUpdated bool   `json:"classUpdated"`
}

type PaymentResponse struct {
	ID              string    `json:"id"`
	UserEmail       string    `json:"userEmail"`
	UserName        string    `json:"userName,omitempty"`
	ClassName       string    `json:"className"`
	SlotID          string    `json:"slotId,omitempty"`
	SelectedPackage string    `json:"selectedPackage,omitempty"`
	Price           int64     `json:"price"`
	Date            time.Time `json:"date"`
}
