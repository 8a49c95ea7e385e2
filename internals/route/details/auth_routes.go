package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "praktikum_backend/internals/features/users/auth/route"
	authService "praktikum_backend/internals/features/users/auth/service"
	userRoute "praktikum_backend/internals/features/users/user/route"
)

func AuthPublicRoutes(public fiber.Router, svc *authService.AuthService) {
	authRoute.AuthPublicRoutes(public, svc)
}

func AuthRoutes(protected fiber.Router, svc *authService.AuthService) {
	authRoute.AuthProtectedRoutes(protected, svc)
}

func UserRoutes(protected fiber.Router, db *gorm.DB) {
	userRoute.UserAdminRoutes(protected, db)
}
