package model

import (
	"math"
	"time"

	"gorm.io/gorm"
)

// Bobot nilai akhir.
const (
	BobotPraktikum = 0.4
	BobotAsistensi = 0.3
	BobotLaporan   = 0.3
)

type NilaiModel struct {
	NilaiID          uint     `json:"nilai_id" gorm:"primaryKey;column:nilai_id"`
	NilaiUserID      uint     `json:"nilai_user_id" gorm:"column:nilai_user_id;not null"`
	NilaiPraktikumID uint     `json:"nilai_praktikum_id" gorm:"column:nilai_praktikum_id;not null"`
	NilaiPraktikum   *float64 `json:"nilai_praktikum" gorm:"column:nilai_praktikum"`
	NilaiAsistensi   *float64 `json:"nilai_asistensi" gorm:"column:nilai_asistensi"`
	NilaiLaporan     *float64 `json:"nilai_laporan" gorm:"column:nilai_laporan"`
	NilaiAkhir       *float64 `json:"nilai_akhir" gorm:"column:nilai_akhir"`

	NilaiCreatedAt time.Time `json:"nilai_created_at" gorm:"column:nilai_created_at;autoCreateTime"`
	NilaiUpdatedAt time.Time `json:"nilai_updated_at" gorm:"column:nilai_updated_at;autoUpdateTime"`

	User      *UserRingkas      `json:"user,omitempty" gorm:"foreignKey:NilaiUserID;references:ID"`
	Praktikum *PraktikumRingkas `json:"praktikum,omitempty" gorm:"foreignKey:NilaiPraktikumID;references:PraktikumID"`
}

func (NilaiModel) TableName() string { return "nilai" }

// BeforeSave: nilai akhir dihitung ulang hanya bila ketiga komponen terisi.
func (n *NilaiModel) BeforeSave(tx *gorm.DB) error {
	if akhir := ComputeNilaiAkhir(n.NilaiPraktikum, n.NilaiAsistensi, n.NilaiLaporan); akhir != nil {
		n.NilaiAkhir = akhir
	}
	return nil
}

// ComputeNilaiAkhir = 0.4·praktikum + 0.3·asistensi + 0.3·laporan, dibulatkan 2 desimal.
// nil bila salah satu komponen kosong.
func ComputeNilaiAkhir(praktikum, asistensi, laporan *float64) *float64 {
	if praktikum == nil || asistensi == nil || laporan == nil {
		return nil
	}
	v := *praktikum*BobotPraktikum + *asistensi*BobotAsistensi + *laporan*BobotLaporan
	v = math.Round(v*100) / 100
	return &v
}

type UserRingkas struct {
	ID    uint    `json:"id" gorm:"column:id;primaryKey"`
	Nama  string  `json:"nama" gorm:"column:nama"`
	Email string  `json:"email" gorm:"column:email"`
	NIM   *string `json:"nim,omitempty" gorm:"column:nim"`
}

func (UserRingkas) TableName() string { return "users" }

type PraktikumRingkas struct {
	PraktikumID   uint   `json:"praktikum_id" gorm:"column:praktikum_id;primaryKey"`
	PraktikumNama string `json:"praktikum_nama" gorm:"column:praktikum_nama"`
}

func (PraktikumRingkas) TableName() string { return "praktikum" }
