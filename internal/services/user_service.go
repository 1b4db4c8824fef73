package services

import (
	"talentscout_backend/internal/auth"
	"talentscout_backend/internal/models"
	"talentscout_backend/internal/repositories"
	"talentscout_backend/internal/services/dto"
	"talentscout_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService interface {
	Register(db *gorm.DB, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	ChangePassword(db *gorm.DB, user *models.User, req *dto.UpdatePasswordRequest) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) Register(db *gorm.DB, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Username:          req.Username,
		Email:             req.Email,
		PasswordHash:      hashedPassword,
		SubscriptionLevel: models.SubscriptionFree,
		IsActive:          true,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrUsernameTaken):
			return nil, apperrors.ErrUsernameTaken
		case apperrors.Is(err, repositories.ErrEmailTaken):
			return nil, apperrors.ErrEmailTaken
		default:
			return nil, apperrors.InternalError(err)
		}
	}

	return dto.NewUserResponse(user), nil
}

// ChangePassword requires the current password to match before rehashing.
func (s *UserServiceImpl) ChangePassword(db *gorm.DB, user *models.User, req *dto.UpdatePasswordRequest) error {
	if !auth.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return apperrors.ErrIncorrectPassword
	}

	hashedPassword, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdatePassword(db, user.ID, hashedPassword); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
