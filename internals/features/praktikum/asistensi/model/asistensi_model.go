package model

import "time"

type AsistensiModel struct {
	AsistensiID           uint       `json:"asistensi_id" gorm:"primaryKey;column:asistensi_id"`
	AsistensiUserID       uint       `json:"asistensi_user_id" gorm:"column:asistensi_user_id;not null"`
	AsistensiPraktikumID  uint       `json:"asistensi_praktikum_id" gorm:"column:asistensi_praktikum_id;not null"`
	AsistensiPertemuanID  uint       `json:"asistensi_pertemuan_id" gorm:"column:asistensi_pertemuan_id;not null"`
	AsistensiKehadiran    bool       `json:"asistensi_kehadiran" gorm:"column:asistensi_kehadiran;not null;default:false"`
	AsistensiNilai        *float64   `json:"asistensi_nilai" gorm:"column:asistensi_nilai"`
	AsistensiCatatan      *string    `json:"asistensi_catatan,omitempty" gorm:"column:asistensi_catatan"`
	AsistensiWaktuMulai   *time.Time `json:"asistensi_waktu_mulai,omitempty" gorm:"column:asistensi_waktu_mulai"`
	AsistensiWaktuSelesai *time.Time `json:"asistensi_waktu_selesai,omitempty" gorm:"column:asistensi_waktu_selesai"`

	AsistensiCreatedAt time.Time `json:"asistensi_created_at" gorm:"column:asistensi_created_at;autoCreateTime"`
	AsistensiUpdatedAt time.Time `json:"asistensi_updated_at" gorm:"column:asistensi_updated_at;autoUpdateTime"`

	User      *UserRingkas      `json:"user,omitempty" gorm:"foreignKey:AsistensiUserID;references:ID"`
	Praktikum *PraktikumRingkas `json:"praktikum,omitempty" gorm:"foreignKey:AsistensiPraktikumID;references:PraktikumID"`
}

func (AsistensiModel) TableName() string { return "asistensi" }

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
