package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"praktikum_backend/internals/features/praktikum/kelompok/dto"
	"praktikum_backend/internals/features/praktikum/kelompok/service"
	helper "praktikum_backend/internals/helpers"
)

type KelompokController struct {
	svc *service.KelompokService
}

func NewKelompokController(db *gorm.DB) *KelompokController {
	return &KelompokController{svc: service.NewKelompokService(db)}
}

// POST /api/kelompok
func (kc *KelompokController) Create(c *fiber.Ctx) error {
	var req dto.CreateKelompokRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	res, err := kc.svc.Create(c.UserContext(), req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "kelompok berhasil dibuat", res)
}

// PUT /api/kelompok/:id
func (kc *KelompokController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	var req dto.UpdateKelompokRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	res, err := kc.svc.Update(c.UserContext(), id, req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "kelompok diperbarui", res)
}

// DELETE /api/kelompok/:id
func (kc *KelompokController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	if err := kc.svc.Delete(c.UserContext(), id); err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonDeleted(c, "kelompok dihapus", fiber.Map{"kelompok_id": id})
}

// GET /api/kelompok/:id
func (kc *KelompokController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	res, err := kc.svc.Get(c.UserContext(), id)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "ok", res)
}

// GET /api/kelompok/:id/anggota
func (kc *KelompokController) Members(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	rows, err := kc.svc.Members(c.UserContext(), id)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "anggota kelompok", rows, nil)
}

// GET /api/kelompok/praktikum/:praktikumId
func (kc *KelompokController) ListByPraktikum(c *fiber.Ctx) error {
	praktikumID, err := helper.ParseID(c, "praktikumId")
	if err != nil {
		return helper.FromError(c, err)
	}
	rows, err := kc.svc.ListByPraktikum(c.UserContext(), praktikumID)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "daftar kelompok", rows, nil)
}

// GET /api/kelompok/user/:userId
func (kc *KelompokController) ListByUser(c *fiber.Ctx) error {
	userID, err := helper.ParseID(c, "userId")
	if err != nil {
		return helper.FromError(c, err)
	}
	rows, err := kc.svc.ListByUser(c.UserContext(), userID)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "kelompok user", rows, nil)
}
