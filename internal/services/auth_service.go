package services

import (
	"time"

	"talentscout_backend/internal/auth"
	"talentscout_backend/internal/repositories"
	"talentscout_backend/internal/services/dto"
	"talentscout_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.TokenResponse, error)
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
	tokens   *auth.TokenService
	tokenTTL time.Duration
}

func NewAuthService(userRepo repositories.UserRepository, tokens *auth.TokenService, tokenTTL time.Duration) AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
		tokens:   tokens,
		tokenTTL: tokenTTL,
	}
}

// Login authenticates by username and password and issues a bearer token.
// Unknown user and wrong password return the same error.
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.FindByUsername(db, req.Username)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, err := s.tokens.Issue(user.Username, s.tokenTTL)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
	}, nil
}
