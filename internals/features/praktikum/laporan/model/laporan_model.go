package model

import (
	"time"

	"gorm.io/datatypes"
)

// FileMeta: info file asli yang diunggah (disimpan sebagai JSONB).
type FileMeta struct {
	OriginalName string `json:"original_name"`
	Size         int64  `json:"size"`
	ContentType  string `json:"content_type"`
}

type LaporanModel struct {
	LaporanID          uint                         `json:"laporan_id" gorm:"primaryKey;column:laporan_id"`
	LaporanUserID      uint                         `json:"laporan_user_id" gorm:"column:laporan_user_id;not null"`
	LaporanPraktikumID uint                         `json:"laporan_praktikum_id" gorm:"column:laporan_praktikum_id;not null"`
	LaporanFile        string                       `json:"laporan_file" gorm:"column:laporan_file;not null"`
	LaporanFileMeta    datatypes.JSONType[FileMeta] `json:"laporan_file_meta" gorm:"column:laporan_file_meta;type:jsonb"`
	LaporanNilai       *float64                     `json:"laporan_nilai" gorm:"column:laporan_nilai"`

	LaporanCreatedAt time.Time `json:"laporan_created_at" gorm:"column:laporan_created_at;autoCreateTime"`
	LaporanUpdatedAt time.Time `json:"laporan_updated_at" gorm:"column:laporan_updated_at;autoUpdateTime"`

	User      *UserRingkas      `json:"user,omitempty" gorm:"foreignKey:LaporanUserID;references:ID"`
	Praktikum *PraktikumRingkas `json:"praktikum,omitempty" gorm:"foreignKey:LaporanPraktikumID;references:PraktikumID"`
}

func (LaporanModel) TableName() string { return "laporan" }

type UserRingkas struct {
	ID    uint    `json:"id" gorm:"column:id;primaryKey"`
	Nama  string  `json:"nama" gorm:"column:nama"`
	Email string  `json:"email" gorm:"column:email"`
	NIM   *string `json:"nim,omitempty" gorm:"column:nim"`
}

func (UserRingkas) TableName() string { return "users" }

type PraktikumRingkas struct {
	PraktikumID           uint      `json:"praktikum_id" gorm:"column:praktikum_id;primaryKey"`
	PraktikumNama         string    `json:"praktikum_nama" gorm:"column:praktikum_nama"`
	PraktikumTanggalMulai time.Time `json:"praktikum_tanggal_mulai" gorm:"column:praktikum_tanggal_mulai"`
}

func (PraktikumRingkas) TableName() string { return "praktikum" }
