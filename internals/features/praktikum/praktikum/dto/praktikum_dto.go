package dto

import (
	"strings"
	"time"

	"praktikum_backend/internals/features/praktikum/praktikum/model"
)

/* ===================== REQUEST ===================== */

type CreatePraktikumRequest struct {
	PraktikumNama           string    `json:"praktikum_nama" validate:"required,min=1,max=160"`
	PraktikumPeriode        *int      `json:"praktikum_periode" validate:"omitempty,min=1"`
	PraktikumTanggalMulai   time.Time `json:"praktikum_tanggal_mulai" validate:"required"`
	PraktikumTanggalSelesai time.Time `json:"praktikum_tanggal_selesai" validate:"required,gtefield=PraktikumTanggalMulai"`
	PraktikumDeskripsi      *string   `json:"praktikum_deskripsi"`
	PraktikumLinkForm       *string   `json:"praktikum_link_form" validate:"omitempty,url"`
}

func (r CreatePraktikumRequest) ToModel() model.PraktikumModel {
	periode := 1
	if r.PraktikumPeriode != nil {
		periode = *r.PraktikumPeriode
	}
	return model.PraktikumModel{
		PraktikumNama:           strings.TrimSpace(r.PraktikumNama),
		PraktikumPeriode:        periode,
		PraktikumTanggalMulai:   r.PraktikumTanggalMulai,
		PraktikumTanggalSelesai: r.PraktikumTanggalSelesai,
		PraktikumDeskripsi:      trimPtr(r.PraktikumDeskripsi),
		PraktikumLinkForm:       trimPtr(r.PraktikumLinkForm),
		PraktikumStatus:         model.StatusAktif,
	}
}

// nil → tidak diubah
type UpdatePraktikumRequest struct {
	PraktikumNama           *string    `json:"praktikum_nama" validate:"omitempty,min=1,max=160"`
	PraktikumPeriode        *int       `json:"praktikum_periode" validate:"omitempty,min=1"`
	PraktikumTanggalMulai   *time.Time `json:"praktikum_tanggal_mulai"`
	PraktikumTanggalSelesai *time.Time `json:"praktikum_tanggal_selesai"`
	PraktikumDeskripsi      *string    `json:"praktikum_deskripsi"`
	PraktikumLinkForm       *string    `json:"praktikum_link_form" validate:"omitempty,url"`
	PraktikumStatus         *string    `json:"praktikum_status" validate:"omitempty,oneof=aktif selesai"`
}

// Apply menerapkan field yang dikirim ke model.
func (r UpdatePraktikumRequest) Apply(m *model.PraktikumModel) {
	if r.PraktikumNama != nil {
		m.PraktikumNama = strings.TrimSpace(*r.PraktikumNama)
	}
	if r.PraktikumPeriode != nil {
		m.PraktikumPeriode = *r.PraktikumPeriode
	}
	if r.PraktikumTanggalMulai != nil {
		m.PraktikumTanggalMulai = *r.PraktikumTanggalMulai
	}
	if r.PraktikumTanggalSelesai != nil {
		m.PraktikumTanggalSelesai = *r.PraktikumTanggalSelesai
	}
	if r.PraktikumDeskripsi != nil {
		m.PraktikumDeskripsi = trimPtr(r.PraktikumDeskripsi)
	}
	if r.PraktikumLinkForm != nil {
		m.PraktikumLinkForm = trimPtr(r.PraktikumLinkForm)
	}
	if r.PraktikumStatus != nil {
		m.PraktikumStatus = *r.PraktikumStatus
	}
}

type ListPraktikumQuery struct {
	Status  string `query:"status" validate:"omitempty,oneof=aktif selesai"`
	Periode *int   `query:"periode" validate:"omitempty,min=1"`
}

// "" → NULL
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
