package dto

import (
	"time"

	"careconnect_backend/internal/models"
)

type RegisterRequest struct {
	Email       string          `json:"email" validate:"required,email"`
	Username    string          `json:"username" validate:"required,min=3,max=50"`
	Password    string          `json:"password" validate:"required,min=8"`
	FullName    string          `json:"full_name" validate:"required,max=120"`
	PhoneNumber string          `json:"phone_number" validate:"omitempty,max=32"`
	Role        models.UserRole `json:"role" validate:"required,oneof=user donor recipient caregiver admin"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	FullName    *string `json:"full_name,omitempty" validate:"omitempty,max=120"`
	PhoneNumber *string `json:"phone_number,omitempty" validate:"omitempty,max=32"`
	Username    *string `json:"username,omitempty" validate:"omitempty,min=3,max=50"`
}

type UserResponse struct {
	ID          uint            `json:"id"`
	Email       string          `json:"email"`
	Username    string          `json:"username"`
	FullName    string          `json:"full_name"`
	PhoneNumber string          `json:"phone_number"`
	Role        models.UserRole `json:"role"`
	CreatedAt   time.Time       `json:"created_at"`
}

type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Username:    u.Username,
		FullName:    u.FullName,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role,
		CreatedAt:   u.CreatedAt,
	}
}
