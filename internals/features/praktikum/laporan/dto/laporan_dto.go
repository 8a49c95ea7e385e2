package dto

import "praktikum_backend/internals/helpers/apperror"

type ListLaporanQuery struct {
	PraktikumID *uint `query:"praktikum_id" validate:"omitempty,min=1"`
	UserID      *uint `query:"user_id" validate:"omitempty,min=1"`
}

// nilai_laporan: nama field klien lama.
type UpdateNilaiLaporanRequest struct {
	LaporanNilai *float64 `json:"laporan_nilai" validate:"omitempty,gte=0,lte=100"`
	NilaiLaporan *float64 `json:"nilai_laporan" validate:"omitempty,gte=0,lte=100"`
}

func (r UpdateNilaiLaporanRequest) Nilai() (float64, error) {
	switch {
	case r.LaporanNilai != nil:
		return *r.LaporanNilai, nil
	case r.NilaiLaporan != nil:
		return *r.NilaiLaporan, nil
	}
	return 0, apperror.Validation("laporan_nilai", "laporan_nilai wajib diisi")
}
