package services

import (
	"encoding/json"
	"fmt"

	"fitpath_backend/internal/email"
	"fitpath_backend/internal/logger"
	"fitpath_backend/internal/models"
	"fitpath_backend/internal/repositories"
	"fitpath_backend/internal/services/dto"
	"fitpath_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ApplicationService interface {
	Submit(db *gorm.DB, req *dto.SubmitApplicationRequest) (*dto.ApplicationResponse, error)
	ListPending(db *gorm.DB) ([]*dto.ApplicationResponse, error)
	Confirm(db *gorm.DB, applicationID string) (*dto.UserResponse, error)
	Reject(db *gorm.DB, applicationID, feedback string) error
	MyApplications(db *gorm.DB, applicantEmail string) ([]*dto.ApplicationStatusItem, error)
}

type applicationService struct {
	appRepo  repositories.ApplicationRepository
	userRepo repositories.UserRepository
	mailer   email.Provider
}

func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	userRepo repositories.UserRepository,
	mailer email.Provider,
) ApplicationService {
	return &applicationService{
		appRepo:  appRepo,
		userRepo: userRepo,
		mailer:   mailer,
	}
}

// Submit creates a fresh pending application. An email that already holds
// the trainer role cannot apply again.
func (s *applicationService) Submit(db *gorm.DB, req *dto.SubmitApplicationRequest) (*dto.ApplicationResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil && err != repositories.ErrUserNotFound {
		return nil, apperrors.StoreError(err)
	}
	if err == nil && user.Role == models.UserRoleTrainer {
		return nil, apperrors.ValidationError(map[string]string{
			"email": "This email already belongs to a trainer",
		})
	}

	days, err := json.Marshal(req.AvailableDays)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	app := &models.TrainerApplication{
		Name:            req.Name,
		Email:           req.Email,
		Age:             req.Age,
		Image:           req.Image,
		Skills:          req.Skills,
		AvailableDays:   days,
		AvailableTime:   req.AvailableTime,
		ExperienceYears: req.ExperienceYears,
		Biography:       req.Biography,
	}
	if err := s.appRepo.Create(db, app); err != nil {
		return nil, apperrors.StoreError(err)
	}

	return buildApplicationResponse(app), nil
}

func (s *applicationService) ListPending(db *gorm.DB) ([]*dto.ApplicationResponse, error) {
	apps, err := s.appRepo.FindAllPending(db)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}

	out := make([]*dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		out = append(out, buildApplicationResponse(&apps[i]))
	}
	return out, nil
}

// Confirm promotes the applicant to trainer and removes the pending record.
// The two writes run in one transaction; re-running after a failure is safe
// because the application is only deleted when the promotion commits.
func (s *applicationService) Confirm(db *gorm.DB, applicationID string) (*dto.UserResponse, error) {
	app, err := s.appRepo.FindByID(db, applicationID)
	if err != nil {
		if err == repositories.ErrApplicationNotFound {
			return nil, apperrors.ErrNotFound(err, "application", "Application not found")
		}
		return nil, apperrors.StoreError(err)
	}

	existing, err := s.userRepo.FindByEmail(db, app.Email)
	if err != nil && err != repositories.ErrUserNotFound {
		return nil, apperrors.StoreError(err)
	}
	if err == nil && existing.Role == models.UserRoleTrainer {
		return nil, apperrors.ErrConflict("application", "User is already a trainer")
	}

	user, err := s.appRepo.Promote(db, app)
	if err != nil {
		if err == repositories.ErrApplicationNotFound {
			return nil, apperrors.ErrNotFound(err, "application", "Application not found")
		}
		return nil, apperrors.StoreError(err)
	}

	s.sendDecisionMail(app.Email, app.Name,
		"Your trainer application was approved",
		fmt.Sprintf("Hi %s, congratulations! Your trainer application has been approved.", app.Name))

	return buildUserResponse(user), nil
}

// Reject requires feedback; the feedback is kept on the audit record shown
// to the applicant.
func (s *applicationService) Reject(db *gorm.DB, applicationID, feedback string) error {
	if feedback == "" {
		return apperrors.ValidationError(map[string]string{
			"feedback": "Feedback is required for rejection",
		})
	}

	app, err := s.appRepo.FindByID(db, applicationID)
	if err != nil {
		if err == repositories.ErrApplicationNotFound {
			return apperrors.ErrNotFound(err, "application", "Application not found")
		}
		return apperrors.StoreError(err)
	}

	if _, err := s.appRepo.Reject(db, app, feedback); err != nil {
		if err == repositories.ErrApplicationNotFound {
			return apperrors.ErrNotFound(err, "application", "Application not found")
		}
		return apperrors.StoreError(err)
	}

	s.sendDecisionMail(app.Email, app.Name,
		"Your trainer application was declined",
		fmt.Sprintf("Hi %s, unfortunately your application was declined. Feedback: %s", app.Name, feedback))

	return nil
}

// MyApplications merges pending and rejected records into one status view.
func (s *applicationService) MyApplications(db *gorm.DB, applicantEmail string) ([]*dto.ApplicationStatusItem, error) {
	pending, err := s.appRepo.FindPendingByEmail(db, applicantEmail)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	rejected, err := s.appRepo.FindRejectedByEmail(db, applicantEmail)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}

	items := make([]*dto.ApplicationStatusItem, 0, len(pending)+len(rejected))
	for i := range pending {
		items = append(items, &dto.ApplicationStatusItem{
			Name:   pending[i].Name,
			Email:  pending[i].Email,
			Status: "Pending",
		})
	}
	for i := range rejected {
		message := rejected[i].Feedback
		if message == "" {
			message = "No feedback provided"
		}
		items = append(items, &dto.ApplicationStatusItem{
			Name:    rejected[i].Name,
			Email:   rejected[i].Email,
			Status:  "Rejected",
			Message: message,
		})
	}
	return items, nil
}

// sendDecisionMail is best-effort: a mail failure never fails the workflow.
func (s *applicationService) sendDecisionMail(to, name, subject, body string) {
	if s.mailer == nil {
		return
	}
	msg := &email.Message{
		To:      []string{to},
		Subject: subject,
		Body:    body,
	}
	if err := s.mailer.Send(msg); err != nil {
		logger.Warn("failed to send application decision email",
			"to", to, "subject", subject, "error", err)
	}
}

func buildApplicationResponse(app *models.TrainerApplication) *dto.ApplicationResponse {
	var days []string
	if len(app.AvailableDays) > 0 {
		_ = json.Unmarshal(app.AvailableDays, &days)
	}

	return &dto.ApplicationResponse{
		ID:              app.ID,
		Name:            app.Name,
		Email:           app.Email,
		Age:             app.Age,
		Image:           app.Image,
		Skills:          app.Skills,
		AvailableDays:   days,
		AvailableTime:   app.AvailableTime,
		ExperienceYears: app.ExperienceYears,
		Biography:       app.Biography,
		Status:          string(app.Status),
		CreatedAt:       app.CreatedAt,
	}
}
