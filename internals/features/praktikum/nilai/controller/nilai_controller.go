package controller

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"praktikum_backend/internals/features/praktikum/nilai/dto"
	"praktikum_backend/internals/features/praktikum/nilai/service"
	helper "praktikum_backend/internals/helpers"
	"praktikum_backend/internals/helpers/apperror"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type NilaiController struct {
	svc *service.NilaiService
}

func NewNilaiController(db *gorm.DB) *NilaiController {
	return &NilaiController{svc: service.NewNilaiService(db)}
}

// POST /api/nilai/update
func (nc *NilaiController) Upsert(c *fiber.Ctx) error {
	var req dto.UpsertNilaiRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	m := req.ToModel()
	res, err := nc.svc.Upsert(c.UserContext(), &m)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "nilai tersimpan", res)
}

// POST /api/nilai/rekap/:praktikumId/:userId
func (nc *NilaiController) Rekap(c *fiber.Ctx) error {
	praktikumID, err := helper.ParseID(c, "praktikumId")
	if err != nil {
		return helper.FromError(c, err)
	}
	userID, err := helper.ParseID(c, "userId")
	if err != nil {
		return helper.FromError(c, err)
	}
	res, err := nc.svc.Rekap(c.UserContext(), userID, praktikumID)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "rekap nilai tersimpan", res)
}

// GET /api/nilai
func (nc *NilaiController) List(c *fiber.Ctx) error {
	var q dto.ListNilaiQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "query tidak valid")
	}
	if err := helper.ValidateStruct(q); err != nil {
		return helper.FromError(c, err)
	}
	p := helper.ResolvePaging(c, 50, 200)

	rows, total, err := nc.svc.List(c.UserContext(), q, p.Limit, p.Offset)
	if err != nil {
		return helper.FromError(c, err)
	}
	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "daftar nilai", rows, &pg)
}

// GET /api/nilai/praktikum/:praktikumId
func (nc *NilaiController) ListByPraktikum(c *fiber.Ctx) error {
	praktikumID, err := helper.ParseID(c, "praktikumId")
	if err != nil {
		return helper.FromError(c, err)
	}
	rows, err := nc.svc.ListByPraktikum(c.UserContext(), praktikumID)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "nilai praktikum", rows, nil)
}

// GET /api/nilai/user/:userId
func (nc *NilaiController) ListByUser(c *fiber.Ctx) error {
	userID, err := helper.ParseID(c, "userId")
	if err != nil {
		return helper.FromError(c, err)
	}
	rows, err := nc.svc.ListByUser(c.UserContext(), userID)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "nilai user", rows, nil)
}

// GET /api/nilai/summary/:userId
func (nc *NilaiController) Summary(c *fiber.Ctx) error {
	userID, err := helper.ParseID(c, "userId")
	if err != nil {
		return helper.FromError(c, err)
	}
	res, err := nc.svc.Summary(c.UserContext(), userID)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "ringkasan nilai", res)
}

// GET /api/nilai/praktikum/:praktikumId/export
func (nc *NilaiController) Export(c *fiber.Ctx) error {
	praktikumID, err := helper.ParseID(c, "praktikumId")
	if err != nil {
		return helper.FromError(c, err)
	}
	f, nama, err := nc.svc.Export(c.UserContext(), praktikumID)
	if err != nil {
		return helper.FromError(c, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			zap.L().Warn("tutup workbook", zap.Error(err))
		}
	}()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return helper.FromError(c, apperror.Internal(err, "gagal menulis file export"))
	}

	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", exportFilename(nama, praktikumID)))
	return c.Send(buf.Bytes())
}

func exportFilename(nama string, id uint) string {
	if slug := helper.Slugify(nama, 60); slug != "" {
		return fmt.Sprintf("nilai-%d-%s.xlsx", id, slug)
	}
	return fmt.Sprintf("nilai-%d.xlsx", id)
}
