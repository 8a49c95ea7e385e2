package dto

import (
	"time"

	"praktikum_backend/internals/features/users/user/model"
)

type UserResponse struct {
	ID        uint      `json:"id"`
	Nama      string    `json:"nama"`
	Email     string    `json:"email"`
	NIM       *string   `json:"nim,omitempty"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func FromModel(u model.UserModel) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Nama:      u.Nama,
		Email:     u.Email,
		NIM:       u.NIM,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

func FromModels(list []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, FromModel(u))
	}
	return out
}

type ListUserQuery struct {
	Role string `query:"role" validate:"omitempty,oneof=admin asisten_lab praktikan"`
	Q    string `query:"q"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin asisten_lab praktikan"`
}

type UpdateStatusRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}
