package repositories

import (
	"fitpath_backend/internal/models"

	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(db *gorm.DB, payment *models.Payment) error
	FindByUserEmail(db *gorm.DB, email string) ([]models.Payment, error)
	CountAll(db *gorm.DB) (int64, error)
	SumAmount(db *gorm.DB) (int64, error)
}

type PaymentRepositoryImpl struct{}

func NewPaymentRepository() PaymentRepository {
	return &PaymentRepositoryImpl{}
}

func (r *PaymentRepositoryImpl) Create(db *gorm.DB, payment *models.Payment) error {
	return db.Create(payment).Error
}

func (r *PaymentRepositoryImpl) FindByUserEmail(db *gorm.DB, email string) ([]models.Payment, error) {
	var payments []models.Payment
	err := db.Where("user_email = ?", email).Order("date DESC").Find(&payments).Error
	return payments, err
}

func (r *PaymentRepositoryImpl) CountAll(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Payment{}).Count(&count).Error
	return count, err
}

func (r *PaymentRepositoryImpl) SumAmount(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Model(&models.Payment{}).Select("COALESCE(SUM(price), 0)").Scan(&total).Error
	return total, err
}
