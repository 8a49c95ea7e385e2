package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"praktikum_backend/internals/constants"
	"praktikum_backend/internals/features/users/user/controller"
	authMiddleware "praktikum_backend/internals/middlewares/auth"
)

// UserAdminRoutes: /api/users (admin saja). r sudah melewati AuthMiddleware.
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)

	g := r.Group("/users", authMiddleware.Require(constants.OpUserManage))
	g.Get("/", ctrl.List)
	g.Patch("/:id/role", ctrl.UpdateRole)
	g.Patch("/:id/status", ctrl.UpdateStatus)
}
