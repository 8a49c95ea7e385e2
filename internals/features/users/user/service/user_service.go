package service

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"praktikum_backend/internals/features/users/user/dto"
	"praktikum_backend/internals/features/users/user/model"
	"praktikum_backend/internals/helpers/apperror"
	authMiddleware "praktikum_backend/internals/middlewares/auth"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

func (s *UserService) FindByID(ctx context.Context, id uint) (*model.UserModel, error) {
	var u model.UserModel
	if err := s.DB.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, apperror.FromDB(err, "user tidak ditemukan")
	}
	return &u, nil
}

// EnsureActive dipakai AuthMiddleware di setiap request terautentikasi.
func (s *UserService) EnsureActive(ctx context.Context, id uint) error {
	var row struct{ IsActive bool }
	if err := s.DB.WithContext(ctx).Table("users").Select("is_active").Where("id = ?", id).Take(&row).Error; err != nil {
		return apperror.FromDB(err, "user tidak ditemukan")
	}
	if !row.IsActive {
		return authMiddleware.ErrUserInactive
	}
	return nil
}

func (s *UserService) List(ctx context.Context, q dto.ListUserQuery, limit, offset int) ([]model.UserModel, int64, error) {
	tx := s.DB.WithContext(ctx).Model(&model.UserModel{})
	if q.Role != "" {
		tx = tx.Where("role = ?", q.Role)
	}
	if kw := strings.TrimSpace(q.Q); kw != "" {
		like := "%" + strings.ToLower(kw) + "%"
		tx = tx.Where("LOWER(nama) LIKE ? OR LOWER(email) LIKE ? OR nim LIKE ?", like, like, like)
	}

	// statement baru untuk Count dan Find
	tx = tx.Session(&gorm.Session{})
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, apperror.FromDB(err, "")
	}
	var users []model.UserModel
	if err := tx.Order("id ASC").Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return nil, 0, apperror.FromDB(err, "")
	}
	return users, total, nil
}

func (s *UserService) UpdateRole(ctx context.Context, id uint, role string) (*model.UserModel, error) {
	return s.update(ctx, id, map[string]any{"role": role})
}

func (s *UserService) SetActive(ctx context.Context, id uint, active bool) (*model.UserModel, error) {
	return s.update(ctx, id, map[string]any{"is_active": active})
}

func (s *UserService) update(ctx context.Context, id uint, fields map[string]any) (*model.UserModel, error) {
	var out *model.UserModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u model.UserModel
		if err := tx.First(&u, id).Error; err != nil {
			return apperror.FromDB(err, "user tidak ditemukan")
		}
		if err := tx.Model(&u).Updates(fields).Error; err != nil {
			return apperror.FromDB(err, "user tidak ditemukan")
		}
		out = &u
		return nil
	})
	return out, err
}
