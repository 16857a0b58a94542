package dto

import "time"

type CreateReviewRequest struct {
	UserEmail  string `json:"userEmail" validate:"required,email"`
	UserName   string `json:"userName"`
	UserImage  string `json:"userImage"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	ReviewText string `json:"reviewText" validate:"required,min=1"`
}

type CreateForumPostRequest struct {
	Title       string `json:"title" validate:"required,min=3"`
	Content     string `json:"content" validate:"required,min=1"`
	AuthorEmail string `json:"authorEmail" validate:"required,email"`
	AuthorName  string `json:"authorName"`
}

type VoteRequest struct {
	Direction string `json:"direction" validate:"required,oneof=up down"`
}

type ForumPageResponse struct {
	Posts      interface{} `json:"posts"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	TotalPages int         `json:"totalPages"`
}

type ClassPageResponse struct {
	Classes    interface{} `json:"classes"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	TotalPages int         `json:"totalPages"`
}

type SubscribeRequest struct {
	Name  string `json:"name" validate:"required,min=2"`
	Email string `json:"email" validate:"required,email"`
}

type CreateClassRequest struct {
	Name        string `json:"name" validate:"required,min=2"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type SubscriberResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribedAt"`
}
