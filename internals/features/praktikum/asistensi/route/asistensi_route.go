package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"praktikum_backend/internals/constants"
	"praktikum_backend/internals/features/praktikum/asistensi/controller"
	authMiddleware "praktikum_backend/internals/middlewares/auth"
)

func AsistensiRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAsistensiController(db)
	g := r.Group("/asistensi")
	read := authMiddleware.Require(constants.OpAsistensiRead)
	write := authMiddleware.Require(constants.OpAsistensiWrite)

	g.Get("/", read, ctrl.List)
	g.Get("/praktikum/:praktikumId", read, ctrl.ListByPraktikum)
	g.Get("/user/:userId", read, authMiddleware.SelfOrStaff("userId"), ctrl.ListByUser)

	g.Post("/", write, ctrl.Create)
	g.Post("/upsert", write, ctrl.Upsert)
	g.Put("/:userId/pertemuan/:pertemuanId", write, ctrl.Update)
	g.Put("/:userId/praktikum/:praktikumId", write, ctrl.UpdateByPraktikum)
}
