// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	helper "praktikum_backend/internals/helpers"
	"praktikum_backend/internals/helpers/apperror"
)

// Key Locals yang diisi middleware ini.
const (
	LocalUserID   = "user_id"
	LocalRole     = "userRole"
	LocalToken    = "token"
	LocalTokenExp = "token_exp"
)

var ErrUserInactive = errors.New("user inactive")

// TokenChecker: blacklist token (Postgres atau Redis).
type TokenChecker interface {
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// UserChecker mengembalikan ErrUserInactive untuk akun nonaktif
// dan apperror NotFound untuk user yang sudah tidak ada.
type UserChecker interface {
	EnsureActive(ctx context.Context, userID uint) error
}

type Config struct {
	Secret    string
	Blacklist TokenChecker
	Users     UserChecker
	// toleransi jam antar server
	Skew time.Duration
}

func AuthMiddleware(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}

		if cfg.Secret == "" {
			zap.L().Error("JWT_SECRET kosong")
			return helper.JsonError(c, fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true, ValidMethods: []string{jwt.SigningMethodHS256.Alg()}}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(cfg.Secret), nil
		}); err != nil {
			zap.L().Debug("gagal parse token", zap.Error(err))
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		exp, err := validateTokenExpiry(claims, cfg.Skew)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		ctx := c.UserContext()
		if cfg.Blacklist != nil {
			revoked, err := cfg.Blacklist.IsRevoked(ctx, tokenString)
			if err != nil {
				zap.L().Error("cek blacklist gagal", zap.Error(err))
				return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
			}
			if revoked {
				return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Token is blacklisted")
			}
		}

		userID, err := extractUserID(claims)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}
		role, _ := claims["role"].(string)
		if role == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - missing role information")
		}

		if cfg.Users != nil {
			if err := cfg.Users.EnsureActive(ctx, userID); err != nil {
				switch {
				case errors.Is(err, ErrUserInactive):
					return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
				case apperror.Is(err, apperror.KindNotFound):
					return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - User not found")
				default:
					return helper.FromError(c, err)
				}
			}
		}

		c.Locals(LocalUserID, userID)
		c.Locals(LocalRole, role)
		c.Locals(LocalToken, tokenString)
		c.Locals(LocalTokenExp, exp)
		return c.Next()
	}
}

// CurrentUser membaca identitas yang diisi AuthMiddleware.
func CurrentUser(c *fiber.Ctx) (uint, string) {
	id, _ := c.Locals(LocalUserID).(uint)
	role, _ := c.Locals(LocalRole).(string)
	return id, role
}
