package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"praktikum_backend/internals/constants"
	"praktikum_backend/internals/features/praktikum/nilai/controller"
	authMiddleware "praktikum_backend/internals/middlewares/auth"
)

func NilaiRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNilaiController(db)
	g := r.Group("/nilai")
	write := authMiddleware.Require(constants.OpNilaiWrite)
	readAll := authMiddleware.Require(constants.OpNilaiReadAll)
	readOwn := authMiddleware.Require(constants.OpNilaiReadOwn)

	g.Post("/update", write, ctrl.Upsert)
	g.Post("/rekap/:praktikumId/:userId", write, ctrl.Rekap)

	g.Get("/", readAll, ctrl.List)
	g.Get("/praktikum/:praktikumId/export", readAll, ctrl.Export)
	g.Get("/praktikum/:praktikumId", readAll, ctrl.ListByPraktikum)
	g.Get("/user/:userId", readOwn, authMiddleware.SelfOrStaff("userId"), ctrl.ListByUser)
	g.Get("/summary/:userId", readOwn, authMiddleware.SelfOrStaff("userId"), ctrl.Summary)
}
