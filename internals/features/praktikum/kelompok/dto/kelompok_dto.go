package dto

import (
	"praktikum_backend/internals/features/praktikum/kelompok/model"
)

type CreateKelompokRequest struct {
	KelompokPraktikumID uint   `json:"kelompok_praktikum_id" validate:"required,min=1"`
	KelompokNama        string `json:"kelompok_nama" validate:"required,max=120"`
	AnggotaIDs          []uint `json:"anggota_ids" validate:"omitempty,dive,min=1"`
}

// AnggotaIDs nil → anggota tidak diubah; [] → kosongkan anggota.
type UpdateKelompokRequest struct {
	KelompokNama *string `json:"kelompok_nama" validate:"omitempty,min=1,max=120"`
	AnggotaIDs   *[]uint `json:"anggota_ids" validate:"omitempty,dive,min=1"`
}

type KelompokResponse struct {
	model.KelompokModel
	Anggota []model.AnggotaView `json:"anggota"`
}
