package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"praktikum_backend/internals/constants"
	"praktikum_backend/internals/features/praktikum/praktikum/controller"
	authMiddleware "praktikum_backend/internals/middlewares/auth"
)

func PraktikumRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPraktikumController(db)
	g := r.Group("/praktikum")

	g.Get("/", authMiddleware.Require(constants.OpPraktikumRead), ctrl.List)
	g.Get("/active", authMiddleware.Require(constants.OpPraktikumRead), ctrl.ListActive)
	g.Get("/:id", authMiddleware.Require(constants.OpPraktikumRead), ctrl.Get)

	g.Post("/", authMiddleware.Require(constants.OpPraktikumWrite), ctrl.Create)
	g.Put("/:id", authMiddleware.Require(constants.OpPraktikumWrite), ctrl.Update)
	g.Delete("/:id", authMiddleware.Require(constants.OpPraktikumDelete), ctrl.Delete)
}
