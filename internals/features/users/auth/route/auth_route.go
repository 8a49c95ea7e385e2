// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"praktikum_backend/internals/features/users/auth/controller"
	"praktikum_backend/internals/features/users/auth/service"
	rateLimiter "praktikum_backend/internals/middlewares"
)

// AuthPublicRoutes: /api/auth tanpa token. Harus dipasang sebelum grup yang memakai AuthMiddleware.
func AuthPublicRoutes(public fiber.Router, svc *service.AuthService) {
	ctrl := controller.NewAuthController(svc)

	pub := public.Group("/auth")
	pub.Post("/login", rateLimiter.LoginRateLimiter(), ctrl.Login)
	pub.Post("/register", rateLimiter.RegisterRateLimiter(), ctrl.Register)
}

// AuthProtectedRoutes: protected sudah melewati AuthMiddleware.
func AuthProtectedRoutes(protected fiber.Router, svc *service.AuthService) {
	ctrl := controller.NewAuthController(svc)

	prot := protected.Group("/auth")
	prot.Post("/logout", ctrl.Logout)
	prot.Get("/me", ctrl.Me)
}
