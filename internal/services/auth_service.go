package services

import (
	"fitpath_backend/internal/auth"
	"fitpath_backend/internal/models"
	"fitpath_backend/internal/repositories"
	"fitpath_backend/internal/services/dto"
	"fitpath_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type authService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	existing, err := s.userRepo.FindByEmail(db, req.Email)
	switch {
	case err == nil && existing.PasswordHash != "":
		return nil, apperrors.ErrEmailAlreadyExists
	case err == nil:
		// Account was created through the social signup path without a
		// password; attach one instead of duplicating the user.
		existing.PasswordHash = hash
		if err := s.userRepo.Update(db, existing); err != nil {
			return nil, apperrors.StoreError(err)
		}
		return s.issueToken(existing)
	case err != repositories.ErrUserNotFound:
		return nil, apperrors.StoreError(err)
	}

	user := &models.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
		Role:         models.UserRoleMember,
		Image:        req.Image,
	}
	if err := s.userRepo.Create(db, user); err != nil {
		return nil, apperrors.StoreError(err)
	}

	return s.issueToken(user)
}

func (s *authService) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.StoreError(err)
	}

	if user.PasswordHash == "" || !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueToken(user)
}

func (s *authService) issueToken(user *models.User) (*dto.AuthResponse, error) {
	token, err := auth.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken: token,
		User:        buildUserResponse(user),
	}, nil
}
