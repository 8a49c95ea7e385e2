package dto

import (
	"time"

	userDTO "praktikum_backend/internals/features/users/user/dto"
)

type RegisterRequest struct {
	Nama     string  `json:"nama" validate:"required,min=3,max=120"`
	Email    string  `json:"email" validate:"required,email,max=255"`
	NIM      *string `json:"nim" validate:"omitempty,max=32"`
	Password string  `json:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string               `json:"access_token"`
	TokenType   string               `json:"token_type"`
	ExpiresAt   time.Time            `json:"expires_at"`
	User        userDTO.UserResponse `json:"user"`
}
