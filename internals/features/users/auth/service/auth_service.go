package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"praktikum_backend/internals/constants"
	"praktikum_backend/internals/features/users/auth/dto"
	authRepo "praktikum_backend/internals/features/users/auth/repository"
	userDTO "praktikum_backend/internals/features/users/user/dto"
	userModel "praktikum_backend/internals/features/users/user/model"
	"praktikum_backend/internals/helpers/apperror"
)

var ErrInvalidCredentials = errors.New("email atau password salah")

type AuthService struct {
	DB        *gorm.DB
	Blacklist BlacklistStore
	Secret    string
	TTL       time.Duration
	now       func() time.Time
}

func NewAuthService(db *gorm.DB, bl BlacklistStore, secret string, ttl time.Duration) *AuthService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AuthService{DB: db, Blacklist: bl, Secret: secret, TTL: ttl, now: time.Now}
}

// Register selalu membuat akun praktikan; role lain diberikan admin.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*userModel.UserModel, error) {
	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, apperror.Internal(err, "gagal hash password")
	}
	user := userModel.UserModel{
		Nama:     req.Nama,
		Email:    req.Email,
		NIM:      req.NIM,
		Password: hash,
		Role:     constants.RolePraktikan,
		IsActive: true,
	}
	if err := authRepo.CreateUser(ctx, s.DB, &user); err != nil {
		return nil, apperror.FromDB(err, "")
	}
	zap.L().Info("user terdaftar", zap.Uint("user_id", user.ID))
	return &user, nil
}

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := authRepo.FindUserByEmail(ctx, s.DB, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, apperror.FromDB(err, "")
	}
	if !CheckPasswordHash(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperror.Conflict("akun dinonaktifkan")
	}

	token, exp, err := IssueAccessToken(*user, s.Secret, s.TTL, s.now())
	if err != nil {
		return nil, apperror.Internal(err, "gagal membuat token")
	}
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   exp,
		User:        userDTO.FromModel(*user),
	}, nil
}

// Logout memasukkan token ke blacklist sampai waktu exp-nya.
func (s *AuthService) Logout(ctx context.Context, token string, exp time.Time) error {
	if exp.IsZero() {
		exp = s.now().Add(s.TTL)
	}
	if err := s.Blacklist.Revoke(ctx, token, exp); err != nil {
		return apperror.Internal(err, "gagal logout")
	}
	return nil
}

func (s *AuthService) Me(ctx context.Context, userID uint) (*userModel.UserModel, error) {
	var u userModel.UserModel
	if err := s.DB.WithContext(ctx).First(&u, userID).Error; err != nil {
		return nil, apperror.FromDB(err, "user tidak ditemukan")
	}
	return &u, nil
}
