package repositories

import (
	"errors"

	"fitpath_backend/internal/models"

	"gorm.io/gorm"
)

var ErrAlreadySubscribed = errors.New("email already subscribed")

type NewsletterRepository interface {
	Subscribe(db *gorm.DB, sub *models.NewsletterSubscriber) error
	FindAll(db *gorm.DB) ([]models.NewsletterSubscriber, error)
}

type NewsletterRepositoryImpl struct{}

func NewNewsletterRepository() NewsletterRepository {
	return &NewsletterRepositoryImpl{}
}

func (r *NewsletterRepositoryImpl) Subscribe(db *gorm.DB, sub *models.NewsletterSubscriber) error {
	var existing models.NewsletterSubscriber
	err := db.Where("email = ?", sub.Email).First(&existing).Error
	if err == nil {
		return ErrAlreadySubscribed
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return db.Create(sub).Error
}

func (r *NewsletterRepositoryImpl) FindAll(db *gorm.DB) ([]models.NewsletterSubscriber, error) {
	var subs []models.NewsletterSubscriber
	err := db.Order("subscribed_at DESC").Find(&subs).Error
	return subs, err
}
