package services

import (
	"fitpath_backend/internal/models"
	"fitpath_backend/internal/repositories"
	"fitpath_backend/internal/services/dto"
	"fitpath_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService interface {
	// CreateOrGet inserts a user by email, returning the existing record
	// untouched when the email is already known.
	CreateOrGet(db *gorm.DB, req *dto.CreateUserRequest) (*dto.UserResponse, bool, error)
	ListAll(db *gorm.DB) ([]*dto.UserResponse, error)
	GetRoleByEmail(db *gorm.DB, email string) (*dto.RoleResponse, error)
	ListTrainers(db *gorm.DB) ([]*dto.UserResponse, error)
	GetTrainerByID(db *gorm.DB, id string) (*dto.UserResponse, error)
	GetTrainerByEmail(db *gorm.DB, email string) (*dto.UserResponse, error)
	DemoteTrainer(db *gorm.DB, email string) error
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) CreateOrGet(db *gorm.DB, req *dto.CreateUserRequest) (*dto.UserResponse, bool, error) {
	existing, err := s.userRepo.FindByEmail(db, req.Email)
	if err == nil {
		return buildUserResponse(existing), false, nil
	}
	if err != repositories.ErrUserNotFound {
		return nil, false, apperrors.StoreError(err)
	}

	user := &models.User{
		Email:  req.Email,
		Name:   req.Name,
		Role:   models.UserRoleMember,
		Skills: req.Skills,
		Image:  req.Image,
		Age:    req.Age,
	}
	if err := s.userRepo.Create(db, user); err != nil {
		return nil, false, apperrors.StoreError(err)
	}

	return buildUserResponse(user), true, nil
}

func (s *userService) ListAll(db *gorm.DB) ([]*dto.UserResponse, error) {
	users, err := s.userRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	return buildUserResponses(users), nil
}

// GetRoleByEmail returns a nil role for unknown emails rather than an error;
// the signup flow probes this endpoint before the user record exists.
func (s *userService) GetRoleByEmail(db *gorm.DB, email string) (*dto.RoleResponse, error) {
	user, err := s.userRepo.FindByEmail(db, email)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return &dto.RoleResponse{Role: nil}, nil
		}
		return nil, apperrors.StoreError(err)
	}

	role := string(user.Role)
	return &dto.RoleResponse{Role: &role}, nil
}

func (s *userService) ListTrainers(db *gorm.DB) ([]*dto.UserResponse, error) {
	trainers, err := s.userRepo.FindByRole(db, models.UserRoleTrainer)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	return buildUserResponses(trainers), nil
}

func (s *userService) GetTrainerByID(db *gorm.DB, id string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, id)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrNotFound(err, "trainer", "Trainer not found")
		}
		return nil, apperrors.StoreError(err)
	}
	if user.Role != models.UserRoleTrainer {
		return nil, apperrors.ErrNotFound(repositories.ErrUserNotFound, "trainer", "Trainer not found")
	}
	return buildUserResponse(user), nil
}

func (s *userService) GetTrainerByEmail(db *gorm.DB, email string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByEmail(db, email)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrNotFound(err, "trainer", "Trainer not found")
		}
		return nil, apperrors.StoreError(err)
	}
	return buildUserResponse(user), nil
}

// DemoteTrainer moves a trainer back to member. The only legal role
// transitions are member→trainer (confirm) and trainer→member (here).
func (s *userService) DemoteTrainer(db *gorm.DB, email string) error {
	user, err := s.userRepo.FindByEmail(db, email)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return apperrors.ErrNotFound(err, "trainer", "Trainer not found")
		}
		return apperrors.StoreError(err)
	}
	if user.Role != models.UserRoleTrainer {
		return apperrors.ErrNotFound(repositories.ErrUserNotFound, "trainer", "Trainer not found")
	}

	if err := s.userRepo.UpdateRole(db, email, models.UserRoleMember); err != nil {
		return apperrors.StoreError(err)
	}
	return nil
}

func buildUserResponse(user *models.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		Skills:    user.Skills,
		Image:     user.Image,
		Age:       user.Age,
		CreatedAt: user.CreatedAt,
	}
}

func buildUserResponses(users []models.User) []*dto.UserResponse {
	out := make([]*dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, buildUserResponse(&users[i]))
	}
	return out
}
