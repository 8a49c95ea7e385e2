package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	asistensiRoute "praktikum_backend/internals/features/praktikum/asistensi/route"
	kelompokRoute "praktikum_backend/internals/features/praktikum/kelompok/route"
	laporanRoute "praktikum_backend/internals/features/praktikum/laporan/route"
	nilaiRoute "praktikum_backend/internals/features/praktikum/nilai/route"
	pertemuanRoute "praktikum_backend/internals/features/praktikum/pertemuan/route"
	praktikumRoute "praktikum_backend/internals/features/praktikum/praktikum/route"
	"praktikum_backend/internals/helpers/storage"
)

func PraktikumRoutes(r fiber.Router, db *gorm.DB, store storage.BlobStorage) {
	praktikumRoute.PraktikumRoutes(r, db)
	pertemuanRoute.PertemuanRoutes(r, db)
	kelompokRoute.KelompokRoutes(r, db)
	asistensiRoute.AsistensiRoutes(r, db)
	laporanRoute.LaporanRoutes(r, db, store)
	nilaiRoute.NilaiRoutes(r, db)
}
