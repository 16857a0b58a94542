package repositories

import (
	"fitpath_backend/internal/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(db *gorm.DB, review *models.Review) error
	FindAll(db *gorm.DB) ([]models.Review, error)
}

type ReviewRepositoryImpl struct{}

func NewReviewRepository() ReviewRepository {
	return &ReviewRepositoryImpl{}
}

func (r *ReviewRepositoryImpl) Create(db *gorm.DB, review *models.Review) error {
	return db.Create(review).Error
}

// FindAll returns reviews newest first, for the testimonial slider.
func (r *ReviewRepositoryImpl) FindAll(db *gorm.DB) ([]models.Review, error) {
	var reviews []models.Review
	err := db.Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}
