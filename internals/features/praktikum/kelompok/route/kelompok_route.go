package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"praktikum_backend/internals/constants"
	"praktikum_backend/internals/features/praktikum/kelompok/controller"
	authMiddleware "praktikum_backend/internals/middlewares/auth"
)

func KelompokRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewKelompokController(db)
	g := r.Group("/kelompok")
	read := authMiddleware.Require(constants.OpKelompokRead)

	g.Get("/praktikum/:praktikumId", read, ctrl.ListByPraktikum)
	g.Get("/user/:userId", read, ctrl.ListByUser)
	g.Get("/:id/anggota", read, ctrl.Members)
	g.Get("/:id", read, ctrl.Get)

	g.Post("/", authMiddleware.Require(constants.OpKelompokWrite), ctrl.Create)
	g.Put("/:id", authMiddleware.Require(constants.OpKelompokWrite), ctrl.Update)
	g.Delete("/:id", authMiddleware.Require(constants.OpKelompokDelete), ctrl.Delete)
}
