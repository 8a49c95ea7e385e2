package dto

import "praktikum_backend/internals/features/praktikum/nilai/model"

// UpsertNilaiRequest menimpa penuh ketiga komponen; field yang tidak dikirim jadi NULL.
type UpsertNilaiRequest struct {
	NilaiUserID      uint     `json:"nilai_user_id" validate:"required,min=1"`
	NilaiPraktikumID uint     `json:"nilai_praktikum_id" validate:"required,min=1"`
	NilaiPraktikum   *float64 `json:"nilai_praktikum" validate:"omitempty,gte=0,lte=100"`
	NilaiAsistensi   *float64 `json:"nilai_asistensi" validate:"omitempty,gte=0,lte=100"`
	NilaiLaporan     *float64 `json:"nilai_laporan" validate:"omitempty,gte=0,lte=100"`
}

func (r UpsertNilaiRequest) ToModel() model.NilaiModel {
	return model.NilaiModel{
		NilaiUserID:      r.NilaiUserID,
		NilaiPraktikumID: r.NilaiPraktikumID,
		NilaiPraktikum:   r.NilaiPraktikum,
		NilaiAsistensi:   r.NilaiAsistensi,
		NilaiLaporan:     r.NilaiLaporan,
	}
}

type ListNilaiQuery struct {
	PraktikumID *uint `query:"praktikum_id" validate:"omitempty,min=1"`
	UserID      *uint `query:"user_id" validate:"omitempty,min=1"`
}

type RataRata struct {
	Praktikum float64 `json:"praktikum"`
	Asistensi float64 `json:"asistensi"`
	Laporan   float64 `json:"laporan"`
	Akhir     float64 `json:"akhir"`
}

type SummaryResponse struct {
	Nilai    []model.NilaiModel `json:"nilai"`
	RataRata RataRata           `json:"rata_rata"`
}
