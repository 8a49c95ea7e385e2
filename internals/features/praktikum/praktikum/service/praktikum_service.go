package service

import (
	"context"
	"net/url"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"praktikum_backend/internals/features/praktikum/praktikum/dto"
	"praktikum_backend/internals/features/praktikum/praktikum/model"
	"praktikum_backend/internals/helpers/apperror"
)

const notFoundMsg = "praktikum tidak ditemukan"

type PraktikumService struct {
	DB *gorm.DB
}

func NewPraktikumService(db *gorm.DB) *PraktikumService {
	return &PraktikumService{DB: db}
}

// ValidateFields: aturan lintas field yang juga dijaga CHECK di database.
func ValidateFields(m *model.PraktikumModel) error {
	if m.PraktikumPeriode < 1 {
		return apperror.Validation("praktikum_periode", "periode minimal 1")
	}
	if m.PraktikumTanggalSelesai.Before(m.PraktikumTanggalMulai) {
		return apperror.Validation("praktikum_tanggal_selesai", "tanggal selesai tidak boleh sebelum tanggal mulai")
	}
	if m.PraktikumLinkForm != nil {
		u, err := url.ParseRequestURI(*m.PraktikumLinkForm)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return apperror.Validation("praktikum_link_form", "link form harus berupa URL yang valid")
		}
	}
	switch m.PraktikumStatus {
	case model.StatusAktif, model.StatusSelesai:
	default:
		return apperror.Validation("praktikum_status", "status harus aktif atau selesai")
	}
	return nil
}

func withRingkasan(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Pertemuan", func(db *gorm.DB) *gorm.DB {
			return db.Order("pertemuan_urutan ASC")
		}).
		Preload("Kelompok", func(db *gorm.DB) *gorm.DB {
			return db.Select(`kelompok.kelompok_id, kelompok.kelompok_praktikum_id, kelompok.kelompok_nama,
				(SELECT COUNT(*) FROM kelompok_anggota ka WHERE ka.kelompok_anggota_kelompok_id = kelompok.kelompok_id) AS jumlah_anggota`).
				Order("kelompok.kelompok_nama ASC")
		})
}

func (s *PraktikumService) Create(ctx context.Context, m *model.PraktikumModel) error {
	if m.PraktikumStatus == "" {
		m.PraktikumStatus = model.StatusAktif
	}
	if err := ValidateFields(m); err != nil {
		return err
	}
	if err := s.DB.WithContext(ctx).Omit(clause.Associations).Create(m).Error; err != nil {
		return apperror.FromDB(err, notFoundMsg)
	}
	return nil
}

// List diurutkan periode DESC, tanggal_mulai DESC.
func (s *PraktikumService) List(ctx context.Context, q dto.ListPraktikumQuery, limit, offset int) ([]model.PraktikumModel, int64, error) {
	tx := s.DB.WithContext(ctx).Model(&model.PraktikumModel{})
	if q.Status != "" {
		tx = tx.Where("praktikum_status = ?", q.Status)
	}
	if q.Periode != nil {
		tx = tx.Where("praktikum_periode = ?", *q.Periode)
	}

	// statement baru untuk Count dan Find
	tx = tx.Session(&gorm.Session{})
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, apperror.FromDB(err, "")
	}

	var rows []model.PraktikumModel
	if err := withRingkasan(tx).
		Order("praktikum_periode DESC").
		Order("praktikum_tanggal_mulai DESC").
		Order("praktikum_id DESC").
		Limit(limit).Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, 0, apperror.FromDB(err, "")
	}
	return rows, total, nil
}

func (s *PraktikumService) ListActive(ctx context.Context) ([]model.PraktikumModel, error) {
	var rows []model.PraktikumModel
	if err := withRingkasan(s.DB.WithContext(ctx)).
		Where("praktikum_status = ?", model.StatusAktif).
		Order("praktikum_periode DESC").
		Order("praktikum_tanggal_mulai DESC").
		Find(&rows).Error; err != nil {
		return nil, apperror.FromDB(err, "")
	}
	return rows, nil
}

func (s *PraktikumService) Get(ctx context.Context, id uint) (*model.PraktikumModel, error) {
	var m model.PraktikumModel
	if err := withRingkasan(s.DB.WithContext(ctx)).First(&m, id).Error; err != nil {
		return nil, apperror.FromDB(err, notFoundMsg)
	}
	return &m, nil
}

func (s *PraktikumService) Update(ctx context.Context, id uint, req dto.UpdatePraktikumRequest) (*model.PraktikumModel, error) {
	var out model.PraktikumModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&out, id).Error; err != nil {
			return apperror.FromDB(err, notFoundMsg)
		}
		req.Apply(&out)
		if err := ValidateFields(&out); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Save(&out).Error; err != nil {
			return apperror.FromDB(err, notFoundMsg)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete ditolak selama praktikum masih punya pertemuan; FK RESTRICT menutup race-nya.
func (s *PraktikumService) Delete(ctx context.Context, id uint) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m model.PraktikumModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&m, id).Error; err != nil {
			return apperror.FromDB(err, notFoundMsg)
		}
		var n int64
		if err := tx.Table("pertemuan").Where("pertemuan_praktikum_id = ?", id).Count(&n).Error; err != nil {
			return apperror.FromDB(err, "")
		}
		if n > 0 {
			return apperror.Conflict("praktikum masih memiliki %d pertemuan", n)
		}
		if err := tx.Delete(&model.PraktikumModel{}, id).Error; err != nil {
			return apperror.FromDBDelete(err, notFoundMsg)
		}
		return nil
	})
}
