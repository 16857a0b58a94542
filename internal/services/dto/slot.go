package dto

import "time"

type CreateSlotRequest struct {
	TrainerEmail string   `json:"trainerEmail" validate:"required,email"`
	SlotName     string   `json:"slotName" validate:"required"`
	SlotTime     string   `json:"slotTime" validate:"required"`
	Days         []string `json:"days"`
	ClassName    string   `json:"className"`
}

type BookSlotRequest struct {
	TrainerID       string `json:"trainerId" validate:"required,uuid"`
	SlotID          string `json:"slotId" validate:"required,uuid"`
	UserID          string `json:"userId" validate:"required,uuid"`
	SelectedPackage string `json:"selectedPackage" validate:"package_tier"`
}

type SlotResponse struct {
	ID            string   `json:"id"`
	TrainerID     string   `json:"trainerId,omitempty"`
	TrainerEmail  string   `json:"trainerEmail"`
	SlotName      string   `json:"slotName"`
	SlotTime      string   `json:"slotTime"`
	Days          []string `json:"days,omitempty"`
	ClassName     string   `json:"className,omitempty"`
	IsAvailable   bool     `json:"isAvailable"`
	TotalBookings int      `json:"totalBookings"`
}

type BookingResponse struct {
	BookingID       string    `json:"bookingId"`
	TrainerID       string    `json:"trainerId"`
	SlotID          string    `json:"slotId"`
	UserID          string    `json:"userId"`
	SelectedPackage string    `json:"selectedPackage"`
	BookingStatus   string    `json:"bookingStatus"`
	BookingTime     time.Time `json:"bookingTime"`
}
