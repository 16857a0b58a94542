package repositories

import (
	"errors"

	"fitpath_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrSlotNotFound  = errors.New("slot not found")
	ErrBookingFailed = errors.New("booking failed")
)

type SlotRepository interface {
	Create(db *gorm.DB, slot *models.Slot) error
	FindByID(db *gorm.DB, id string) (*models.Slot, error)
	FindAvailable(db *gorm.DB) ([]models.Slot, error)
	FindByTrainerEmail(db *gorm.DB, email string) ([]models.Slot, error)
	IncrementBookings(db *gorm.DB, id string) error
	Delete(db *gorm.DB, id string) error
}

type SlotRepositoryImpl struct{}

func NewSlotRepository() SlotRepository {
	return &SlotRepositoryImpl{}
}

func (r *SlotRepositoryImpl) Create(db *gorm.DB, slot *models.Slot) error {
	return db.Create(slot).Error
}

func (r *SlotRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Slot, error) {
	var slot models.Slot
	if err := db.Where("id = ?", id).First(&slot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}
	return &slot, nil
}

func (r *SlotRepositoryImpl) FindAvailable(db *gorm.DB) ([]models.Slot, error) {
	var slots []models.Slot
	err := db.Where("is_available = ?", true).Order("created_at ASC").Find(&slots).Error
	return slots, err
}

func (r *SlotRepositoryImpl) FindByTrainerEmail(db *gorm.DB, email string) ([]models.Slot, error) {
	var slots []models.Slot
	err := db.Where("trainer_email = ?", email).Order("created_at ASC").Find(&slots).Error
	return slots, err
}

// IncrementBookings bumps total_bookings; zero matched rows is a booking
// failure, not a silent success.
func (r *SlotRepositoryImpl) IncrementBookings(db *gorm.DB, id string) error {
	res := db.Model(&models.Slot{}).Where("id = ?", id).
		UpdateColumn("total_bookings", gorm.Expr("total_bookings + ?", 1))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrBookingFailed
	}
	return nil
}

func (r *SlotRepositoryImpl) Delete(db *gorm.DB, id string) error {
	res := db.Where("id = ?", id).Delete(&models.Slot{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrSlotNotFound
	}
	return nil
}
