package model

import "time"

type KelompokModel struct {
	KelompokID          uint      `json:"kelompok_id" gorm:"primaryKey;column:kelompok_id"`
	KelompokPraktikumID uint      `json:"kelompok_praktikum_id" gorm:"column:kelompok_praktikum_id;not null"`
	KelompokNama        string    `json:"kelompok_nama" gorm:"column:kelompok_nama;not null"`
	KelompokCreatedAt   time.Time `json:"kelompok_created_at" gorm:"column:kelompok_created_at;autoCreateTime"`
	KelompokUpdatedAt   time.Time `json:"kelompok_updated_at" gorm:"column:kelompok_updated_at;autoUpdateTime"`
}

func (KelompokModel) TableName() string { return "kelompok" }

// KelompokAnggotaModel: tabel penghubung kelompok ↔ users.
type KelompokAnggotaModel struct {
	KelompokAnggotaKelompokID uint      `json:"kelompok_anggota_kelompok_id" gorm:"primaryKey;column:kelompok_anggota_kelompok_id"`
	KelompokAnggotaUserID     uint      `json:"kelompok_anggota_user_id" gorm:"primaryKey;column:kelompok_anggota_user_id"`
	KelompokAnggotaCreatedAt  time.Time `json:"kelompok_anggota_created_at" gorm:"column:kelompok_anggota_created_at;autoCreateTime"`
}

func (KelompokAnggotaModel) TableName() string { return "kelompok_anggota" }

// AnggotaView: data user yang ditampilkan sebagai anggota.
type AnggotaView struct {
	KelompokID uint    `json:"-" gorm:"column:kelompok_id"`
	UserID     uint    `json:"user_id" gorm:"column:user_id"`
	Nama       string  `json:"nama" gorm:"column:nama"`
	Email      string  `json:"email" gorm:"column:email"`
	NIM        *string `json:"nim,omitempty" gorm:"column:nim"`
}
