package services

import (
	"context"
	"time"

	"fitpath_backend/internal/logger"
	"fitpath_backend/internal/models"
	"fitpath_backend/internal/payments"
	"fitpath_backend/internal/repositories"
	"fitpath_backend/internal/services/dto"
	"fitpath_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type PaymentService interface {
	CreateIntent(ctx context.Context, req *dto.CreatePaymentIntentRequest) (*dto.PaymentIntentResponse, error)
	// Record saves the payment and bumps the matching class counter. A
	// missing class is reported via ClassUpdated, never as a failure: the
	// payment record always survives.
	Record(db *gorm.DB, req *dto.RecordPaymentRequest) (*dto.RecordPaymentResponse, error)
	BookedTrainers(db *gorm.DB, userEmail string) ([]*dto.PaymentResponse, error)
}

type paymentService struct {
	paymentRepo repositories.PaymentRepository
	classRepo   repositories.ClassRepository
	gateway     payments.Gateway
	currency    string
}

func NewPaymentService(
	paymentRepo repositories.PaymentRepository,
	classRepo repositories.ClassRepository,
	gateway payments.Gateway,
	currency string,
) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		classRepo:   classRepo,
		gateway:     gateway,
		currency:    currency,
	}
}

func (s *paymentService) CreateIntent(ctx context.Context, req *dto.CreatePaymentIntentRequest) (*dto.PaymentIntentResponse, error) {
	amount := payments.AmountForPackage(req.Package)

	intent, err := s.gateway.CreateIntent(ctx, amount, s.currency)
	if err != nil {
		if apperrors.Is(err, context.DeadlineExceeded) {
			return nil, apperrors.TimeoutError(err)
		}
		// Propagate the provider's message, per the gateway error contract.
		return nil, apperrors.GatewayError(err, err.Error())
	}

	return &dto.PaymentIntentResponse{
		ClientSecret: intent.ClientSecret,
		Amount:       intent.Amount,
	}, nil
}

func (s *paymentService) Record(db *gorm.DB, req *dto.RecordPaymentRequest) (*dto.RecordPaymentResponse, error) {
	payment := &models.Payment{
		UserEmail:       req.UserEmail,
		UserName:        req.UserName,
		ClassName:       req.ClassName,
		SlotID:          req.SlotID,
		SelectedPackage: models.PackageTier(req.SelectedPackage),
		Price:           req.Price,
		Date:            time.Now(),
		TransactionID:   req.TransactionID,
	}
	if err := s.paymentRepo.Create(db, payment); err != nil {
		return nil, apperrors.StoreError(err)
	}

	classUpdated, err := s.classRepo.IncrementBookingCount(db, req.ClassName)
	if err != nil {
		// The payment is saved; a counter failure is logged, not returned.
		logger.Warn("failed to update class booking count",
			"class", req.ClassName, "error", err)
		classUpdated = false
	}

	return &dto.RecordPaymentResponse{
		Success:      true,
		PaymentID:    payment.ID,
		ClassUpdated: classUpdated,
	}, nil
}

func (s *paymentService) BookedTrainers(db *gorm.DB, userEmail string) ([]*dto.PaymentResponse, error) {
	records, err := s.paymentRepo.FindByUserEmail(db, userEmail)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}

	out := make([]*dto.PaymentResponse, 0, len(records))
	for i := range records {
		p := &records[i]
		out = append(out, &dto.PaymentResponse{
			ID:              p.ID,
			UserEmail:       p.UserEmail,
			UserName:        p.UserName,
			ClassName:       p.ClassName,
			SlotID:          p.SlotID,
			SelectedPackage: string(p.SelectedPackage),
			Price:           p.Price,
			Date:            p.Date,
		})
	}
	return out, nil
}
