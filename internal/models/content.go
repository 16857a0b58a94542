package models

import "time"

type Review struct {
	BaseModel
	UserEmail  string `gorm:"index;not null" json:"userEmail"`
	UserName   string `json:"userName"`
	UserImage  string `json:"userImage"`
	Rating     int    `gorm:"not null" json:"rating"`
	ReviewText string `gorm:"not null" json:"reviewText"`
}

type ForumPost struct {
	BaseModel
	Title       string   `gorm:"not null" json:"title"`
	Content     string   `gorm:"not null" json:"content"`
	AuthorEmail string   `gorm:"index;not null" json:"authorEmail"`
	AuthorName  string   `json:"authorName"`
	AuthorRole  UserRole `gorm:"type:varchar(20)" json:"authorRole"`
	Upvotes     int      `gorm:"default:0" json:"upvotes"`
	Downvotes   int      `gorm:"default:0" json:"downvotes"`
}

type NewsletterSubscriber struct {
	BaseModel
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	SubscribedAt time.Time `gorm:"not null" json:"subscribedAt"`
}
