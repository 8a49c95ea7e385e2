package controller

import (
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"praktikum_backend/internals/constants"
	"praktikum_backend/internals/features/praktikum/laporan/dto"
	"praktikum_backend/internals/features/praktikum/laporan/service"
	helper "praktikum_backend/internals/helpers"
	"praktikum_backend/internals/helpers/apperror"
	"praktikum_backend/internals/helpers/storage"
	authMiddleware "praktikum_backend/internals/middlewares/auth"
)

type LaporanController struct {
	svc *service.LaporanService
}

func NewLaporanController(db *gorm.DB, store storage.BlobStorage) *LaporanController {
	return &LaporanController{svc: service.NewLaporanService(db, store)}
}

// formPraktikumID membaca laporan_praktikum_id; id_praktikum diterima untuk klien lama.
func formPraktikumID(c *fiber.Ctx) (uint, error) {
	raw := strings.TrimSpace(c.FormValue("laporan_praktikum_id"))
	if raw == "" {
		raw = strings.TrimSpace(c.FormValue("id_praktikum"))
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperror.Validation("laporan_praktikum_id", "laporan_praktikum_id wajib berupa angka positif")
	}
	return uint(id), nil
}

// POST /api/laporan, POST /api/laporan/upload (multipart: laporan_praktikum_id, file_laporan)
func (lc *LaporanController) Upload(c *fiber.Ctx) error {
	uid, _ := authMiddleware.CurrentUser(c)

	praktikumID, err := formPraktikumID(c)
	if err != nil {
		return helper.FromError(c, err)
	}

	fh, err := c.FormFile("file_laporan")
	if err != nil {
		fh = nil
	}
	res, err := lc.svc.Upload(c.UserContext(), uid, praktikumID, fh)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "laporan berhasil diunggah", res)
}

// GET /api/laporan?praktikum_id=&user_id=
func (lc *LaporanController) List(c *fiber.Ctx) error {
	var q dto.ListLaporanQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "query tidak valid")
	}
	if err := helper.ValidateStruct(q); err != nil {
		return helper.FromError(c, err)
	}
	p := helper.ResolvePaging(c, 20, 100)

	rows, total, err := lc.svc.List(c.UserContext(), q, p.Limit, p.Offset)
	if err != nil {
		return helper.FromError(c, err)
	}
	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "daftar laporan", rows, &pg)
}

// GET /api/laporan/me
func (lc *LaporanController) Mine(c *fiber.Ctx) error {
	uid, _ := authMiddleware.CurrentUser(c)
	rows, err := lc.svc.Mine(c.UserContext(), uid)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "laporan saya", rows, nil)
}

// GET /api/laporan/praktikum/:praktikumId
func (lc *LaporanController) ListByPraktikum(c *fiber.Ctx) error {
	praktikumID, err := helper.ParseID(c, "praktikumId")
	if err != nil {
		return helper.FromError(c, err)
	}
	rows, err := lc.svc.ListByPraktikum(c.UserContext(), praktikumID)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "laporan praktikum", rows, nil)
}

// GET /api/laporan/user/:userId
func (lc *LaporanController) ListByUser(c *fiber.Ctx) error {
	userID, err := helper.ParseID(c, "userId")
	if err != nil {
		return helper.FromError(c, err)
	}
	rows, err := lc.svc.ListByUser(c.UserContext(), userID)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "laporan user", rows, nil)
}

// PUT /api/laporan/nilai/:userId/:praktikumId, PUT /api/laporan/:userId/:praktikumId/nilai
func (lc *LaporanController) UpdateNilai(c *fiber.Ctx) error {
	userID, err := helper.ParseID(c, "userId")
	if err != nil {
		return helper.FromError(c, err)
	}
	praktikumID, err := helper.ParseID(c, "praktikumId")
	if err != nil {
		return helper.FromError(c, err)
	}
	var req dto.UpdateNilaiLaporanRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	nilai, err := req.Nilai()
	if err != nil {
		return helper.FromError(c, err)
	}
	res, err := lc.svc.UpdateNilai(c.UserContext(), userID, praktikumID, nilai)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "nilai laporan diperbarui", res)
}

// GET /api/laporan/:id/download
func (lc *LaporanController) Download(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	m, err := lc.svc.Get(c.UserContext(), id)
	if err != nil {
		return helper.FromError(c, err)
	}
	if uid, role := authMiddleware.CurrentUser(c); !constants.IsStaff(role) && m.LaporanUserID != uid {
		return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorOwner("laporan pengguna lain"))
	}

	rc, info, err := lc.svc.Open(c.UserContext(), m)
	if err != nil {
		return helper.FromError(c, err)
	}

	meta := m.LaporanFileMeta.Data()
	name := meta.OriginalName
	if name == "" {
		name = path.Base(m.LaporanFile)
	}
	ct := info.ContentType
	if ct == "" {
		ct = meta.ContentType
	}
	if ct != "" {
		c.Set(fiber.HeaderContentType, ct)
	}
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", path.Base(name)))

	size := int(info.Size)
	if size <= 0 {
		size = -1
	}
	// fasthttp menutup rc setelah body terkirim
	return c.SendStream(rc, size)
}
