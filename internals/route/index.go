package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"praktikum_backend/internals/configs"
	authService "praktikum_backend/internals/features/users/auth/service"
	userService "praktikum_backend/internals/features/users/user/service"
	"praktikum_backend/internals/helpers/storage"
	authMiddleware "praktikum_backend/internals/middlewares/auth"
	routeDetails "praktikum_backend/internals/route/details"
)

var startTime time.Time

type Deps struct {
	DB        *gorm.DB
	Store     storage.BlobStorage
	Auth      *authService.AuthService
	Blacklist authService.BlacklistStore
}

func SetupRoutes(app *fiber.App, d Deps) {
	startTime = time.Now()

	BaseRoutes(app, d.DB)

	// route publik dipasang lebih dulu: Group dengan handler mendaftarkan Use pada prefix /api
	public := app.Group("/api")
	routeDetails.AuthPublicRoutes(public, d.Auth)

	protected := app.Group("/api", authMiddleware.AuthMiddleware(authMiddleware.Config{
		Secret:    configs.JWTSecret,
		Blacklist: d.Blacklist,
		Users:     userService.NewUserService(d.DB),
	}))

	zap.L().Info("mounting auth & user routes")
	routeDetails.AuthRoutes(protected, d.Auth)
	routeDetails.UserRoutes(protected, d.DB)

	zap.L().Info("mounting praktikum routes")
	routeDetails.PraktikumRoutes(protected, d.DB, d.Store)
}
