package dto

import "time"

type CreateUserRequest struct {
	Name   string   `json:"name" validate:"required,min=2"`
	Email  string   `json:"email" validate:"required,email"`
	Image  string   `json:"image"`
	Skills []string `json:"skills"`
	Age    int      `json:"age" validate:"omitempty,min=0,max=120"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Skills    []string  `json:"skills"`
	Image     string    `json:"image"`
	Age       int       `json:"age,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type RoleResponse struct {
	Role *string `json:"role"`
}
