package users

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"praktikum_backend/internals/constants"
	authService "praktikum_backend/internals/features/users/auth/service"
	"praktikum_backend/internals/features/users/user/model"
)

type UserSeed struct {
	Nama     string  `json:"nama"`
	Email    string  `json:"email"`
	NIM      *string `json:"nim"`
	Password string  `json:"password"`
	Role     string  `json:"role"`
}

// SeedAdmin membuat akun admin dari ENV jika email belum terdaftar.
func SeedAdmin(ctx context.Context, db *gorm.DB, email, password, nama string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		zap.L().Info("ADMIN_EMAIL/ADMIN_PASSWORD kosong, seed admin dilewati")
		return nil
	}
	n, err := insertIfAbsent(ctx, db, UserSeed{Nama: nama, Email: email, Password: password, Role: constants.RoleAdmin})
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if n > 0 {
		zap.L().Info("admin dibuat", zap.String("email", email))
	}
	return nil
}

// SeedUsersFromJSON memuat daftar user (mis. asisten lab) dari file JSON.
func SeedUsersFromJSON(ctx context.Context, db *gorm.DB, filePath string) (int, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("gagal membaca file JSON: %w", err)
	}
	var inputs []UserSeed
	if err := sonic.Unmarshal(raw, &inputs); err != nil {
		return 0, fmt.Errorf("gagal decode JSON: %w", err)
	}

	inserted := 0
	for _, data := range inputs {
		if !constants.IsValidRole(data.Role) {
			zap.L().Warn("role tidak dikenal, dilewati", zap.String("email", data.Email), zap.String("role", data.Role))
			continue
		}
		n, err := insertIfAbsent(ctx, db, data)
		if err != nil {
			return inserted, err
		}
		inserted += int(n)
	}
	return inserted, nil
}

func insertIfAbsent(ctx context.Context, db *gorm.DB, data UserSeed) (int64, error) {
	hash, err := authService.HashPassword(data.Password)
	if err != nil {
		return 0, err
	}
	u := model.UserModel{
		Nama:     data.Nama,
		Email:    data.Email,
		NIM:      data.NIM,
		Password: hash,
		Role:     data.Role,
		IsActive: true,
	}
	// unique index ada di LOWER(email), jadi pakai DO NOTHING tanpa target
	res := db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&u)
	return res.RowsAffected, res.Error
}
