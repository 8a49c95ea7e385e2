package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"praktikum_backend/internals/features/praktikum/praktikum/dto"
	"praktikum_backend/internals/features/praktikum/praktikum/service"
	helper "praktikum_backend/internals/helpers"
)

type PraktikumController struct {
	svc *service.PraktikumService
}

func NewPraktikumController(db *gorm.DB) *PraktikumController {
	return &PraktikumController{svc: service.NewPraktikumService(db)}
}

// POST /api/praktikum
func (pc *PraktikumController) Create(c *fiber.Ctx) error {
	var req dto.CreatePraktikumRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	m := req.ToModel()
	if err := pc.svc.Create(c.UserContext(), &m); err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "praktikum berhasil dibuat", m)
}

// GET /api/praktikum?status=&periode=&page=&per_page=
func (pc *PraktikumController) List(c *fiber.Ctx) error {
	var q dto.ListPraktikumQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "query tidak valid")
	}
	if err := helper.ValidateStruct(q); err != nil {
		return helper.FromError(c, err)
	}
	p := helper.ResolvePaging(c, 20, 100)

	rows, total, err := pc.svc.List(c.UserContext(), q, p.Limit, p.Offset)
	if err != nil {
		return helper.FromError(c, err)
	}
	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "daftar praktikum", rows, &pg)
}

// GET /api/praktikum/active
func (pc *PraktikumController) ListActive(c *fiber.Ctx) error {
	rows, err := pc.svc.ListActive(c.UserContext())
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "praktikum aktif", rows, nil)
}

// GET /api/praktikum/:id
func (pc *PraktikumController) Get(c *fiber.Ctx) error {
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

// PUT /api/praktikum/:id
func (pc *PraktikumController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	var req dto.UpdatePraktikumRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	m, err := pc.svc.Update(c.UserContext(), id, req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "praktikum diperbarui", m)
}

// DELETE /api/praktikum/:id
func (pc *PraktikumController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	if err := pc.svc.Delete(c.UserContext(), id); err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonDeleted(c, "praktikum dihapus", fiber.Map{"praktikum_id": id})
}
