package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"praktikum_backend/internals/features/users/user/dto"
	"praktikum_backend/internals/features/users/user/service"
	helper "praktikum_backend/internals/helpers"
	"praktikum_backend/internals/helpers/apperror"
	authMiddleware "praktikum_backend/internals/middlewares/auth"
)

type UserController struct {
	svc *service.UserService
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{svc: service.NewUserService(db)}
}

// GET /api/users
func (uc *UserController) List(c *fiber.Ctx) error {
	var q dto.ListUserQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "query tidak valid")
	}
	if err := helper.ValidateStruct(q); err != nil {
		return helper.FromError(c, err)
	}
	p := helper.ResolvePaging(c, 20, 100)

	users, total, err := uc.svc.List(c.UserContext(), q, p.Limit, p.Offset)
	if err != nil {
		return helper.FromError(c, err)
	}
	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "daftar user", dto.FromModels(users), &pg)
}

// PATCH /api/users/:id/role
func (uc *UserController) UpdateRole(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	var req dto.UpdateRoleRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	// admin tidak boleh menurunkan role dirinya sendiri
	if me, _ := authMiddleware.CurrentUser(c); me == id {
		return helper.FromError(c, apperror.Conflict("tidak dapat mengubah role akun sendiri"))
	}

	u, err := uc.svc.UpdateRole(c.UserContext(), id, req.Role)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "role user diperbarui", dto.FromModel(*u))
}

// PATCH /api/users/:id/status
func (uc *UserController) UpdateStatus(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	var req dto.UpdateStatusRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	if me, _ := authMiddleware.CurrentUser(c); me == id && !*req.IsActive {
		return helper.FromError(c, apperror.Conflict("tidak dapat menonaktifkan akun sendiri"))
	}

	u, err := uc.svc.SetActive(c.UserContext(), id, *req.IsActive)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "status user diperbarui", dto.FromModel(*u))
}
