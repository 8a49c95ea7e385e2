package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"praktikum_backend/internals/constants"
	"praktikum_backend/internals/features/praktikum/pertemuan/controller"
	authMiddleware "praktikum_backend/internals/middlewares/auth"
)

func PertemuanRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPertemuanController(db)
	g := r.Group("/pertemuan")

	g.Get("/praktikum/:praktikumId", authMiddleware.Require(constants.OpPertemuanRead), ctrl.ListByPraktikum)
	g.Get("/:id", authMiddleware.Require(constants.OpPertemuanRead), ctrl.Get)

	g.Post("/", authMiddleware.Require(constants.OpPertemuanWrite), ctrl.Create)
	g.Put("/:id", authMiddleware.Require(constants.OpPertemuanWrite), ctrl.Update)
	g.Delete("/:id", authMiddleware.Require(constants.OpPertemuanDelete), ctrl.Delete)
}
