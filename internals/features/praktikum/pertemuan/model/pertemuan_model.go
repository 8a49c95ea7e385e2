package model

import "time"

const (
	StatusBelumMulai  = "belum_mulai"
	StatusBerlangsung = "berlangsung"
	StatusSelesai     = "selesai"
)

type PertemuanModel struct {
	PertemuanID          uint      `json:"pertemuan_id" gorm:"primaryKey;column:pertemuan_id"`
	PertemuanPraktikumID uint      `json:"pertemuan_praktikum_id" gorm:"column:pertemuan_praktikum_id;not null"`
	PertemuanNama        string    `json:"pertemuan_nama" gorm:"column:pertemuan_nama;not null"`
	PertemuanUrutan      int       `json:"pertemuan_urutan" gorm:"column:pertemuan_urutan;not null"`
	PertemuanTanggal     time.Time `json:"pertemuan_tanggal" gorm:"column:pertemuan_tanggal;not null"`
	PertemuanDeskripsi   *string   `json:"pertemuan_deskripsi,omitempty" gorm:"column:pertemuan_deskripsi"`
	PertemuanMateri      *string   `json:"pertemuan_materi,omitempty" gorm:"column:pertemuan_materi"`
	PertemuanStatus      string    `json:"pertemuan_status" gorm:"column:pertemuan_status;not null;default:belum_mulai"`

	PertemuanCreatedAt time.Time `json:"pertemuan_created_at" gorm:"column:pertemuan_created_at;autoCreateTime"`
	PertemuanUpdatedAt time.Time `json:"pertemuan_updated_at" gorm:"column:pertemuan_updated_at;autoUpdateTime"`
}

func (PertemuanModel) TableName() string { return "pertemuan" }
