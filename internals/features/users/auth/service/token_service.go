package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	userModel "praktikum_backend/internals/features/users/user/model"
)

var ErrMissingSecret = errors.New("JWT_SECRET belum diset")

// IssueAccessToken: HS256 dengan klaim id, role, nama, exp.
func IssueAccessToken(user userModel.UserModel, secret string, ttl time.Duration, now time.Time) (string, time.Time, error) {
	if secret == "" {
		return "", time.Time{}, ErrMissingSecret
	}
	exp := now.Add(ttl).UTC()
	claims := jwt.MapClaims{
		"id":   user.ID,
		"role": user.Role,
		"nama": user.Nama,
		"iat":  now.Unix(),
		"exp":  exp.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}
