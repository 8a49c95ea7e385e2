package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"praktikum_backend/internals/constants"
	"praktikum_backend/internals/features/praktikum/asistensi/dto"
	"praktikum_backend/internals/features/praktikum/asistensi/service"
	helper "praktikum_backend/internals/helpers"
	authMiddleware "praktikum_backend/internals/middlewares/auth"
)

type AsistensiController struct {
	svc *service.AsistensiService
}

func NewAsistensiController(db *gorm.DB) *AsistensiController {
	return &AsistensiController{svc: service.NewAsistensiService(db)}
}

// POST /api/asistensi
func (ac *AsistensiController) Create(c *fiber.Ctx) error {
	var req dto.AsistensiRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	m := req.ToModel()
	if err := ac.svc.Create(c.UserContext(), &m); err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "asistensi berhasil dicatat", m)
}

// POST /api/asistensi/upsert
func (ac *AsistensiController) Upsert(c *fiber.Ctx) error {
	var req dto.AsistensiRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	m := req.ToModel()
	res, err := ac.svc.Upsert(c.UserContext(), &m)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "asistensi tersimpan", res)
}

// PUT /api/asistensi/:userId/pertemuan/:pertemuanId
func (ac *AsistensiController) Update(c *fiber.Ctx) error {
	userID, err := helper.ParseID(c, "userId")
	if err != nil {
		return helper.FromError(c, err)
	}
	pertemuanID, err := helper.ParseID(c, "pertemuanId")
	if err != nil {
		return helper.FromError(c, err)
	}
	var req dto.UpdateAsistensiRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	res, err := ac.svc.Update(c.UserContext(), userID, pertemuanID, req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "asistensi diperbarui", res)
}

// PUT /api/asistensi/:userId/praktikum/:praktikumId
func (ac *AsistensiController) UpdateByPraktikum(c *fiber.Ctx) error {
	userID, err := helper.ParseID(c, "userId")
	if err != nil {
		return helper.FromError(c, err)
	}
	praktikumID, err := helper.ParseID(c, "praktikumId")
	if err != nil {
		return helper.FromError(c, err)
	}
	var req dto.UpdateAsistensiRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	res, err := ac.svc.UpdateByPraktikum(c.UserContext(), userID, praktikumID, req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "asistensi diperbarui", res)
}

// GET /api/asistensi?praktikum_id=&pertemuan_id=&user_id=
// praktikan selalu dibatasi ke datanya sendiri.
func (ac *AsistensiController) List(c *fiber.Ctx) error {
	var q dto.ListAsistensiQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "query tidak valid")
	}
	if err := helper.ValidateStruct(q); err != nil {
		return helper.FromError(c, err)
	}
	if uid, role := authMiddleware.CurrentUser(c); !constants.IsStaff(role) {
		q.UserID = &uid
	}
	p := helper.ResolvePaging(c, 50, 200)

	rows, total, err := ac.svc.List(c.UserContext(), q, p.Limit, p.Offset)
	if err != nil {
		return helper.FromError(c, err)
	}
	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "daftar asistensi", rows, &pg)
}

// GET /api/asistensi/praktikum/:praktikumId
func (ac *AsistensiController) ListByPraktikum(c *fiber.Ctx) error {
	praktikumID, err := helper.ParseID(c, "praktikumId")
	if err != nil {
		return helper.FromError(c, err)
	}
	var only *uint
	if uid, role := authMiddleware.CurrentUser(c); !constants.IsStaff(role) {
		only = &uid
	}
	rows, err := ac.svc.ListByPraktikum(c.UserContext(), praktikumID, only)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "asistensi praktikum", rows, nil)
}

// GET /api/asistensi/user/:userId
func (ac *AsistensiController) ListByUser(c *fiber.Ctx) error {
	userID, err := helper.ParseID(c, "userId")
	if err != nil {
		return helper.FromError(c, err)
	}
	rows, err := ac.svc.ListByUser(c.UserContext(), userID)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "asistensi user", rows, nil)
}
