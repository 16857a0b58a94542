package dto

import "time"

type SubmitApplicationRequest struct {
	Name            string   `json:"name" validate:"required,min=2"`
	Email           string   `json:"email" validate:"required,email"`
	Age             int      `json:"age" validate:"omitempty,min=16,max=100"`
	Image           string   `json:"image"`
	Skills          []string `json:"skills" validate:"required,min=1"`
	AvailableDays   []string `json:"availableDays"`
	AvailableTime   string   `json:"availableTime"`
	ExperienceYears int      `json:"experienceYears" validate:"omitempty,min=0"`
	Biography       string   `json:"biography"`
}

type RejectApplicationRequest struct {
	Feedback string `json:"feedback" validate:"required,min=1"`
}

type ApplicationResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Age             int       `json:"age,omitempty"`
	Image           string    `json:"image,omitempty"`
	Skills          []string  `json:"skills,omitempty"`
	AvailableDays   []string  `json:"availableDays,omitempty"`
	AvailableTime   string    `json:"availableTime,omitempty"`
	ExperienceYears int       `json:"experienceYears,omitempty"`
	Biography       string    `json:"biography,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ApplicationStatusItem is one row of the my-applications view, merging
// pending and rejected records.
type ApplicationStatusItem struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
