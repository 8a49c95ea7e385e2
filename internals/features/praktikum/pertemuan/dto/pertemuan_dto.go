package dto

import (
	"strings"
	"time"

	"praktikum_backend/internals/features/praktikum/pertemuan/model"
)

type CreatePertemuanRequest struct {
	PertemuanPraktikumID uint      `json:"pertemuan_praktikum_id" validate:"required,min=1"`
	PertemuanNama        string    `json:"pertemuan_nama" validate:"required,max=160"`
	PertemuanUrutan      int       `json:"pertemuan_urutan" validate:"required,min=1"`
	PertemuanTanggal     time.Time `json:"pertemuan_tanggal" validate:"required"`
	PertemuanDeskripsi   *string   `json:"pertemuan_deskripsi"`
	PertemuanMateri      *string   `json:"pertemuan_materi"`
}

func (r CreatePertemuanRequest) ToModel() model.PertemuanModel {
	return model.PertemuanModel{
		PertemuanPraktikumID: r.PertemuanPraktikumID,
		PertemuanNama:        strings.TrimSpace(r.PertemuanNama),
		PertemuanUrutan:      r.PertemuanUrutan,
		PertemuanTanggal:     r.PertemuanTanggal,
		PertemuanDeskripsi:   trimPtr(r.PertemuanDeskripsi),
		PertemuanMateri:      trimPtr(r.PertemuanMateri),
		PertemuanStatus:      model.StatusBelumMulai,
	}
}

// praktikum_id tidak bisa dipindah lewat update
type UpdatePertemuanRequest struct {
	PertemuanNama      *string    `json:"pertemuan_nama" validate:"omitempty,max=160"`
	PertemuanUrutan    *int       `json:"pertemuan_urutan" validate:"omitempty,min=1"`
	PertemuanTanggal   *time.Time `json:"pertemuan_tanggal"`
	PertemuanDeskripsi *string    `json:"pertemuan_deskripsi"`
	PertemuanMateri    *string    `json:"pertemuan_materi"`
	PertemuanStatus    *string    `json:"pertemuan_status" validate:"omitempty,oneof=belum_mulai berlangsung selesai"`
}

// Apply tidak menyentuh status; transisi status dicek service.
func (r UpdatePertemuanRequest) Apply(m *model.PertemuanModel) {
	if r.PertemuanNama != nil {
		m.PertemuanNama = strings.TrimSpace(*r.PertemuanNama)
	}
	if r.PertemuanUrutan != nil {
		m.PertemuanUrutan = *r.PertemuanUrutan
	}
	if r.PertemuanTanggal != nil {
		m.PertemuanTanggal = *r.PertemuanTanggal
	}
	if r.PertemuanDeskripsi != nil {
		m.PertemuanDeskripsi = trimPtr(r.PertemuanDeskripsi)
	}
	if r.PertemuanMateri != nil {
		m.PertemuanMateri = trimPtr(r.PertemuanMateri)
	}
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
