package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"praktikum_backend/internals/features/praktikum/pertemuan/dto"
	"praktikum_backend/internals/features/praktikum/pertemuan/service"
	helper "praktikum_backend/internals/helpers"
)

type PertemuanController struct {
	svc *service.PertemuanService
}

func NewPertemuanController(db *gorm.DB) *PertemuanController {
	return &PertemuanController{svc: service.NewPertemuanService(db)}
}

// POST /api/pertemuan
func (pc *PertemuanController) Create(c *fiber.Ctx) error {
	var req dto.CreatePertemuanRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	m := req.ToModel()
	if err := pc.svc.Create(c.UserContext(), &m); err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "pertemuan berhasil dibuat", m)
}

// GET /api/pertemuan/praktikum/:praktikumId
func (pc *PertemuanController) ListByPraktikum(c *fiber.Ctx) error {
	praktikumID, err := helper.ParseID(c, "praktikumId")
	if err != nil {
		return helper.FromError(c, err)
	}
	rows, err := pc.svc.ListByPraktikum(c.UserContext(), praktikumID)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "daftar pertemuan", rows, nil)
}

// GET /api/pertemuan/:id
func (pc *PertemuanController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	m, err := pc.svc.Get(c.UserContext(), id)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "ok", m)
}

// PUT /api/pertemuan/:id
func (pc *PertemuanController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	var req dto.UpdatePertemuanRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	m, err := pc.svc.Update(c.UserContext(), id, req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "pertemuan diperbarui", m)
}

// DELETE /api/pertemuan/:id
func (pc *PertemuanController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	if err := pc.svc.Delete(c.UserContext(), id); err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonDeleted(c, "pertemuan dihapus", fiber.Map{"pertemuan_id": id})
}
