package dto

import (
	"strings"
	"time"

	"praktikum_backend/internals/features/praktikum/asistensi/model"
)

// dipakai untuk create maupun upsert
type AsistensiRequest struct {
	AsistensiUserID       uint       `json:"asistensi_user_id" validate:"required,min=1"`
	AsistensiPraktikumID  uint       `json:"asistensi_praktikum_id" validate:"required,min=1"`
	AsistensiPertemuanID  uint       `json:"asistensi_pertemuan_id" validate:"required,min=1"`
	AsistensiKehadiran    bool       `json:"asistensi_kehadiran"`
	AsistensiNilai        *float64   `json:"asistensi_nilai" validate:"omitempty,gte=0,lte=100"`
	AsistensiCatatan      *string    `json:"asistensi_catatan"`
	AsistensiWaktuMulai   *time.Time `json:"asistensi_waktu_mulai"`
	AsistensiWaktuSelesai *time.Time `json:"asistensi_waktu_selesai"`
}

func (r AsistensiRequest) ToModel() model.AsistensiModel {
	return model.AsistensiModel{
		AsistensiUserID:       r.AsistensiUserID,
		AsistensiPraktikumID:  r.AsistensiPraktikumID,
		AsistensiPertemuanID:  r.AsistensiPertemuanID,
		AsistensiKehadiran:    r.AsistensiKehadiran,
		AsistensiNilai:        r.AsistensiNilai,
		AsistensiCatatan:      trimPtr(r.AsistensiCatatan),
		AsistensiWaktuMulai:   r.AsistensiWaktuMulai,
		AsistensiWaktuSelesai: r.AsistensiWaktuSelesai,
	}
}

// nil → tidak diubah
type UpdateAsistensiRequest struct {
	AsistensiKehadiran    *bool      `json:"asistensi_kehadiran"`
	AsistensiNilai        *float64   `json:"asistensi_nilai" validate:"omitempty,gte=0,lte=100"`
	AsistensiCatatan      *string    `json:"asistensi_catatan"`
	AsistensiWaktuMulai   *time.Time `json:"asistensi_waktu_mulai"`
	AsistensiWaktuSelesai *time.Time `json:"asistensi_waktu_selesai"`
}

func (r UpdateAsistensiRequest) Apply(m *model.AsistensiModel) {
	if r.AsistensiKehadiran != nil {
		m.AsistensiKehadiran = *r.AsistensiKehadiran
	}
	if r.AsistensiNilai != nil {
		v := *r.AsistensiNilai
		m.AsistensiNilai = &v
	}
	if r.AsistensiCatatan != nil {
		m.AsistensiCatatan = trimPtr(r.AsistensiCatatan)
	}
	if r.AsistensiWaktuMulai != nil {
		m.AsistensiWaktuMulai = r.AsistensiWaktuMulai
	}
	if r.AsistensiWaktuSelesai != nil {
		m.AsistensiWaktuSelesai = r.AsistensiWaktuSelesai
	}
}

type ListAsistensiQuery struct {
	PraktikumID *uint `query:"praktikum_id" validate:"omitempty,min=1"`
	PertemuanID *uint `query:"pertemuan_id" validate:"omitempty,min=1"`
	UserID      *uint `query:"user_id" validate:"omitempty,min=1"`
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
