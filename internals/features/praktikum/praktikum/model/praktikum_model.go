// file: internals/features/praktikum/praktikum/model/praktikum_model.go
package model

import "time"

const (
	StatusAktif   = "aktif"
	StatusSelesai = "selesai"
)

type PraktikumModel struct {
	PraktikumID             uint      `json:"praktikum_id" gorm:"primaryKey;column:praktikum_id"`
	PraktikumNama           string    `json:"praktikum_nama" gorm:"column:praktikum_nama;not null"`
	PraktikumPeriode        int       `json:"praktikum_periode" gorm:"column:praktikum_periode;not null;default:1"`
	PraktikumTanggalMulai   time.Time `json:"praktikum_tanggal_mulai" gorm:"column:praktikum_tanggal_mulai;not null"`
	PraktikumTanggalSelesai time.Time `json:"praktikum_tanggal_selesai" gorm:"column:praktikum_tanggal_selesai;not null"`
	PraktikumDeskripsi      *string   `json:"praktikum_deskripsi,omitempty" gorm:"column:praktikum_deskripsi"`
	PraktikumLinkForm       *string   `json:"praktikum_link_form,omitempty" gorm:"column:praktikum_link_form"`
	PraktikumStatus         string    `json:"praktikum_status" gorm:"column:praktikum_status;not null;default:aktif"`

	PraktikumCreatedAt time.Time `json:"praktikum_created_at" gorm:"column:praktikum_created_at;autoCreateTime"`
	PraktikumUpdatedAt time.Time `json:"praktikum_updated_at" gorm:"column:praktikum_updated_at;autoUpdateTime"`

	// read-only, diisi lewat Preload
	Pertemuan []PertemuanRingkas `json:"pertemuan,omitempty" gorm:"foreignKey:PertemuanPraktikumID;references:PraktikumID"`
	Kelompok  []KelompokRingkas  `json:"kelompok,omitempty" gorm:"foreignKey:KelompokPraktikumID;references:PraktikumID"`
}

func (PraktikumModel) TableName() string { return "praktikum" }

type PertemuanRingkas struct {
	PertemuanID          uint      `json:"pertemuan_id" gorm:"column:pertemuan_id;primaryKey"`
	PertemuanPraktikumID uint      `json:"-" gorm:"column:pertemuan_praktikum_id"`
	PertemuanNama        string    `json:"pertemuan_nama" gorm:"column:pertemuan_nama"`
	PertemuanUrutan      int       `json:"pertemuan_urutan" gorm:"column:pertemuan_urutan"`
	PertemuanTanggal     time.Time `json:"pertemuan_tanggal" gorm:"column:pertemuan_tanggal"`
	PertemuanStatus      string    `json:"pertemuan_status" gorm:"column:pertemuan_status"`
}

func (PertemuanRingkas) TableName() string { return "pertemuan" }

type KelompokRingkas struct {
	KelompokID          uint   `json:"kelompok_id" gorm:"column:kelompok_id;primaryKey"`
	KelompokPraktikumID uint   `json:"-" gorm:"column:kelompok_praktikum_id"`
	KelompokNama        string `json:"kelompok_nama" gorm:"column:kelompok_nama"`
	JumlahAnggota       int    `json:"jumlah_anggota" gorm:"column:jumlah_anggota;->"`
}

func (KelompokRingkas) TableName() string { return "kelompok" }
