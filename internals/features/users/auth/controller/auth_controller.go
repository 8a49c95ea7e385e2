package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"praktikum_backend/internals/features/users/auth/dto"
	"praktikum_backend/internals/features/users/auth/service"
	userDTO "praktikum_backend/internals/features/users/user/dto"
	helper "praktikum_backend/internals/helpers"
	authMiddleware "praktikum_backend/internals/middlewares/auth"
)

type AuthController struct {
	svc *service.AuthService
}

func NewAuthController(svc *service.AuthService) *AuthController {
	return &AuthController{svc: svc}
}

// POST /api/auth/register
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	user, err := ac.svc.Register(c.UserContext(), req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "registrasi berhasil", userDTO.FromModel(*user))
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	res, err := ac.svc.Login(c.UserContext(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}
		return helper.FromError(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    res.AccessToken,
		Expires:  res.ExpiresAt,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return helper.JsonOK(c, "login berhasil", res)
}

// POST /api/auth/logout
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	token, _ := c.Locals(authMiddleware.LocalToken).(string)
	exp, _ := c.Locals(authMiddleware.LocalTokenExp).(time.Time)
	if token == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "token tidak ditemukan")
	}
	if err := ac.svc.Logout(c.UserContext(), token, exp); err != nil {
		return helper.FromError(c, err)
	}
	c.ClearCookie("access_token")
	return helper.JsonOK(c, "logout berhasil", nil)
}

// GET /api/auth/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	uid, _ := authMiddleware.CurrentUser(c)
	user, err := ac.svc.Me(c.UserContext(), uid)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "ok", userDTO.FromModel(*user))
}
