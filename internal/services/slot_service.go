package services

import (
	"encoding/json"
	"time"

	"fitpath_backend/internal/models"
	"fitpath_backend/internal/repositories"
	"fitpath_backend/internal/services/dto"
	"fitpath_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type SlotService interface {
	Create(db *gorm.DB, trainerID string, req *dto.CreateSlotRequest) (*dto.SlotResponse, error)
	GetByID(db *gorm.DB, id string) (*dto.SlotResponse, error)
	// ListAvailable reports NotFound when no slot is available; an empty
	// schedule is an explicit signal here, not a bare empty list.
	ListAvailable(db *gorm.DB) ([]*dto.SlotResponse, error)
	ListByTrainerEmail(db *gorm.DB, email string) ([]*dto.SlotResponse, error)
	Book(db *gorm.DB, req *dto.BookSlotRequest) (*dto.BookingResponse, error)
	IncrementBookings(db *gorm.DB, slotID string) error
	Delete(db *gorm.DB, slotID string) error
}

type slotService struct {
	slotRepo    repositories.SlotRepository
	bookingRepo repositories.BookingRepository
	userRepo    repositories.UserRepository
}

func NewSlotService(
	slotRepo repositories.SlotRepository,
	bookingRepo repositories.BookingRepository,
	userRepo repositories.UserRepository,
) SlotService {
	return &slotService{
		slotRepo:    slotRepo,
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
	}
}

// Create publishes a slot. Nothing enforces uniqueness on (trainer, time);
// a trainer can double-post the same window.
func (s *slotService) Create(db *gorm.DB, trainerID string, req *dto.CreateSlotRequest) (*dto.SlotResponse, error) {
	days, err := json.Marshal(req.Days)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	slot := &models.Slot{
		TrainerID:    trainerID,
		TrainerEmail: req.TrainerEmail,
		SlotName:     req.SlotName,
		SlotTime:     req.SlotTime,
		Days:         days,
		ClassName:    req.ClassName,
		IsAvailable:  true,
	}
	if err := s.slotRepo.Create(db, slot); err != nil {
		return nil, apperrors.StoreError(err)
	}

	return buildSlotResponse(slot), nil
}

func (s *slotService) GetByID(db *gorm.DB, id string) (*dto.SlotResponse, error) {
	slot, err := s.slotRepo.FindByID(db, id)
	if err != nil {
		if err == repositories.ErrSlotNotFound {
			return nil, apperrors.ErrNotFound(err, "slot", "Slot not found")
		}
		return nil, apperrors.StoreError(err)
	}
	return buildSlotResponse(slot), nil
}

func (s *slotService) ListAvailable(db *gorm.DB) ([]*dto.SlotResponse, error) {
	slots, err := s.slotRepo.FindAvailable(db)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	if len(slots) == 0 {
		return nil, apperrors.ErrNotFound(repositories.ErrSlotNotFound, "slot", "No available slots found")
	}
	return buildSlotResponses(slots), nil
}

func (s *slotService) ListByTrainerEmail(db *gorm.DB, email string) ([]*dto.SlotResponse, error) {
	slots, err := s.slotRepo.FindByTrainerEmail(db, email)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	if len(slots) == 0 {
		return nil, apperrors.ErrNotFound(repositories.ErrSlotNotFound, "slot", "No slots found for this trainer")
	}
	return buildSlotResponses(slots), nil
}

// Book validates the trainer and the slot before recording a pending
// booking. Booking status does not advance on payment completion.
func (s *slotService) Book(db *gorm.DB, req *dto.BookSlotRequest) (*dto.BookingResponse, error) {
	trainer, err := s.userRepo.FindByID(db, req.TrainerID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrNotFound(err, "booking", "Trainer not found or not a trainer")
		}
		return nil, apperrors.StoreError(err)
	}
	if trainer.Role != models.UserRoleTrainer {
		return nil, apperrors.ErrNotFound(repositories.ErrUserNotFound, "booking", "Trainer not found or not a trainer")
	}

	if _, err := s.slotRepo.FindByID(db, req.SlotID); err != nil {
		if err == repositories.ErrSlotNotFound {
			return nil, apperrors.ErrNotFound(err, "booking", "Slot not found")
		}
		return nil, apperrors.StoreError(err)
	}

	booking := &models.Booking{
		TrainerID:       req.TrainerID,
		SlotID:          req.SlotID,
		UserID:          req.UserID,
		SelectedPackage: models.PackageTier(req.SelectedPackage),
		Status:          models.BookingStatusPending,
		BookingTime:     time.Now(),
	}
	if err := s.bookingRepo.Create(db, booking); err != nil {
		return nil, apperrors.StoreError(err)
	}

	return &dto.BookingResponse{
		BookingID:       booking.ID,
		TrainerID:       booking.TrainerID,
		SlotID:          booking.SlotID,
		UserID:          booking.UserID,
		SelectedPackage: string(booking.SelectedPackage),
		BookingStatus:   string(booking.Status),
		BookingTime:     booking.BookingTime,
	}, nil
}

func (s *slotService) IncrementBookings(db *gorm.DB, slotID string) error {
	if err := s.slotRepo.IncrementBookings(db, slotID); err != nil {
		if err == repositories.ErrBookingFailed {
			return apperrors.ErrBookingFailed
		}
		return apperrors.StoreError(err)
	}
	return nil
}

func (s *slotService) Delete(db *gorm.DB, slotID string) error {
	if err := s.slotRepo.Delete(db, slotID); err != nil {
		if err == repositories.ErrSlotNotFound {
			return apperrors.ErrNotFound(err, "slot", "Slot not found")
		}
		return apperrors.StoreError(err)
	}
	return nil
}

func buildSlotResponse(slot *models.Slot) *dto.SlotResponse {
	var days []string
	if len(slot.Days) > 0 {
		_ = json.Unmarshal(slot.Days, &days)
	}

	return &dto.SlotResponse{
		ID:            slot.ID,
		TrainerID:     slot.TrainerID,
		TrainerEmail:  slot.TrainerEmail,
		SlotName:      slot.SlotName,
		SlotTime:      slot.SlotTime,
		Days:          days,
		ClassName:     slot.ClassName,
		IsAvailable:   slot.IsAvailable,
		TotalBookings: slot.TotalBookings,
	}
}

func buildSlotResponses(slots []models.Slot) []*dto.SlotResponse {
	out := make([]*dto.SlotResponse, 0, len(slots))
	for i := range slots {
		out = append(out, buildSlotResponse(&slots[i]))
	}
	return out
}
