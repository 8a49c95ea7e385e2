package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"praktikum_backend/internals/constants"
	"praktikum_backend/internals/features/praktikum/laporan/controller"
	"praktikum_backend/internals/helpers/storage"
	authMiddleware "praktikum_backend/internals/middlewares/auth"
)

func LaporanRoutes(r fiber.Router, db *gorm.DB, store storage.BlobStorage) {
	ctrl := controller.NewLaporanController(db, store)
	g := r.Group("/laporan")
	readOwn := authMiddleware.Require(constants.OpLaporanReadOwn)
	readAll := authMiddleware.Require(constants.OpLaporanReadAll)

	upload := authMiddleware.Require(constants.OpLaporanUpload)
	grade := authMiddleware.Require(constants.OpLaporanGrade)

	g.Post("/", upload, ctrl.Upload)
	g.Post("/upload", upload, ctrl.Upload)

	g.Get("/", readAll, ctrl.List)
	g.Get("/me", readOwn, ctrl.Mine)
	g.Get("/my-laporan", readOwn, ctrl.Mine)
	g.Get("/praktikum/:praktikumId", readAll, ctrl.ListByPraktikum)
	g.Get("/user/:userId", readOwn, authMiddleware.SelfOrStaff("userId"), ctrl.ListByUser)
	g.Get("/:id/download", readOwn, ctrl.Download)

	g.Put("/nilai/:userId/:praktikumId", grade, ctrl.UpdateNilai)
	g.Put("/:userId/:praktikumId/nilai", grade, ctrl.UpdateNilai)
}
