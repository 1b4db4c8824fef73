package dto

import "talentscout_backend/internal/models"

type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

// UserResponse is the public user record. The password hash never leaves
// the service layer.
type UserResponse struct {
	ID                uint                     `json:"id"`
	Username          string                   `json:"username"`
	Email             string                   `json:"email"`
	SubscriptionLevel models.SubscriptionLevel `json:"subscription_level"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func NewUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:                user.ID,
		Username:          user.Username,
		Email:             user.Email,
		SubscriptionLevel: user.SubscriptionLevel,
	}
}
