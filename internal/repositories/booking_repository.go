package repositories

import (
	"fitpath_backend/internal/models"

	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(db *gorm.DB, booking *models.Booking) error
	FindByUser(db *gorm.DB, userID string) ([]models.Booking, error)
	FindBySlot(db *gorm.DB, slotID string) ([]models.Booking, error)
}

type BookingRepositoryImpl struct{}

func NewBookingRepository() BookingRepository {
	return &BookingRepositoryImpl{}
}

func (r *BookingRepositoryImpl) Create(db *gorm.DB, booking *models.Booking) error {
	return db.Create(booking).Error
}

func (r *BookingRepositoryImpl) FindByUser(db *gorm.DB, userID string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := db.Where("user_id = ?", userID).Order("booking_time DESC").Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepositoryImpl) FindBySlot(db *gorm.DB, slotID string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := db.Where("slot_id = ?", slotID).Order("booking_time DESC").Find(&bookings).Error
	return bookings, err
}
