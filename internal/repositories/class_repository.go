package repositories

import (
	"errors"

	"fitpath_backend/internal/models"

	"gorm.io/gorm"
)

var ErrClassNotFound = errors.New("class not found")

type ClassRepository interface {
	Create(db *gorm.DB, class *models.Class) error
	FindAll(db *gorm.DB) ([]models.Class, error)
	FindPage(db *gorm.DB, page, limit int) ([]models.Class, int64, error)
	// IncrementBookingCount reports whether any class matched the name.
	IncrementBookingCount(db *gorm.DB, name string) (bool, error)
}

type ClassRepositoryImpl struct{}

func NewClassRepository() ClassRepository {
	return &ClassRepositoryImpl{}
}

func (r *ClassRepositoryImpl) Create(db *gorm.DB, class *models.Class) error {
	class.BookingCount = 0
	return db.Create(class).Error
}

func (r *ClassRepositoryImpl) FindAll(db *gorm.DB) ([]models.Class, error) {
	var classes []models.Class
	err := db.Order("created_at ASC").Find(&classes).Error
	return classes, err
}

func (r *ClassRepositoryImpl) FindPage(db *gorm.DB, page, limit int) ([]models.Class, int64, error) {
	var classes []models.Class
	var total int64

	if err := db.Model(&models.Class{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := db.Order("booking_count DESC").Limit(limit).Offset(offset).Find(&classes).Error
	return classes, total, err
}

func (r *ClassRepositoryImpl) IncrementBookingCount(db *gorm.DB, name string) (bool, error) {
	res := db.Model(&models.Class{}).Where("name = ?", name).
		UpdateColumn("booking_count", gorm.Expr("booking_count + ?", 1))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
