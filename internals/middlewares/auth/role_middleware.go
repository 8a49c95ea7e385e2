package auth

import (
	"github.com/gofiber/fiber/v2"

	"praktikum_backend/internals/constants"
	helper "praktikum_backend/internals/helpers"
)

// Require menjaga route dengan predikat constants.Allowed(role, op).
func Require(op constants.Operation) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(LocalRole).(string)
		if !ok || role == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized: missing role information")
		}
		if !constants.Allowed(role, op) {
			return helper.JsonError(c, fiber.StatusForbidden, constants.RoleMessage(op))
		}
		return c.Next()
	}
}

// SelfOrStaff: praktikan hanya boleh membaca data miliknya sendiri (param :userId).
func SelfOrStaff(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, role := CurrentUser(c)
		if constants.IsStaff(role) {
			return c.Next()
		}
		target, err := helper.ParseID(c, param)
		if err != nil {
			return helper.FromError(c, err)
		}
		if target != uid {
			return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorOwner("data pengguna lain"))
		}
		return c.Next()
	}
}
