package service

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"praktikum_backend/internals/features/praktikum/guard"
	"praktikum_backend/internals/features/praktikum/pertemuan/dto"
	"praktikum_backend/internals/features/praktikum/pertemuan/model"
	"praktikum_backend/internals/helpers/apperror"
)

const notFoundMsg = "pertemuan tidak ditemukan"

type PertemuanService struct {
	DB *gorm.DB
}

func NewPertemuanService(db *gorm.DB) *PertemuanService {
	return &PertemuanService{DB: db}
}

func urutanTaken(tx *gorm.DB, praktikumID uint, urutan int, exceptID uint) (bool, error) {
	q := tx.Model(&model.PertemuanModel{}).
		Where("pertemuan_praktikum_id = ? AND pertemuan_urutan = ?", praktikumID, urutan)
	if exceptID != 0 {
		q = q.Where("pertemuan_id <> ?", exceptID)
	}
	var n int64
	err := q.Count(&n).Error
	return n > 0, err
}

// Create: pre-check urutan untuk pesan yang jelas; UNIQUE constraint tetap penentu akhir.
func (s *PertemuanService) Create(ctx context.Context, m *model.PertemuanModel) error {
	if m.PertemuanUrutan < 1 {
		return apperror.Validation("pertemuan_urutan", "urutan minimal 1")
	}
	m.PertemuanStatus = model.StatusBelumMulai

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := guard.PraktikumExists(tx, m.PertemuanPraktikumID); err != nil {
			return err
		}
		taken, err := urutanTaken(tx, m.PertemuanPraktikumID, m.PertemuanUrutan, 0)
		if err != nil {
			return apperror.FromDB(err, "")
		}
		if taken {
			return apperror.Conflict("urutan %d sudah dipakai pada praktikum ini", m.PertemuanUrutan)
		}
		if err := tx.Create(m).Error; err != nil {
			return apperror.FromDB(err, notFoundMsg)
		}
		return nil
	})
}

func (s *PertemuanService) ListByPraktikum(ctx context.Context, praktikumID uint) ([]model.PertemuanModel, error) {
	db := s.DB.WithContext(ctx)
	if err := guard.PraktikumExists(db, praktikumID); err != nil {
		return nil, err
	}
	var rows []model.PertemuanModel
	if err := db.Where("pertemuan_praktikum_id = ?", praktikumID).
		Order("pertemuan_urutan ASC").
		Find(&rows).Error; err != nil {
		return nil, apperror.FromDB(err, "")
	}
	return rows, nil
}

func (s *PertemuanService) Get(ctx context.Context, id uint) (*model.PertemuanModel, error) {
	var m model.PertemuanModel
	if err := s.DB.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, apperror.FromDB(err, notFoundMsg)
	}
	return &m, nil
}

func (s *PertemuanService) Update(ctx context.Context, id uint, req dto.UpdatePertemuanRequest) (*model.PertemuanModel, error) {
	var m model.PertemuanModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&m, id).Error; err != nil {
			return apperror.FromDB(err, notFoundMsg)
		}

		if req.PertemuanUrutan != nil && *req.PertemuanUrutan != m.PertemuanUrutan {
			taken, err := urutanTaken(tx, m.PertemuanPraktikumID, *req.PertemuanUrutan, m.PertemuanID)
			if err != nil {
				return apperror.FromDB(err, "")
			}
			if taken {
				return apperror.Conflict("urutan %d sudah dipakai pertemuan lain", *req.PertemuanUrutan)
			}
		}
		if req.PertemuanStatus != nil {
			if err := CheckTransition(m.PertemuanStatus, *req.PertemuanStatus); err != nil {
				return err
			}
			m.PertemuanStatus = *req.PertemuanStatus
		}

		req.Apply(&m)
		if err := tx.Save(&m).Error; err != nil {
			return apperror.FromDB(err, notFoundMsg)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Delete ditolak bila masih ada asistensi yang merujuk pertemuan ini.
func (s *PertemuanService) Delete(ctx context.Context, id uint) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m model.PertemuanModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&m, id).Error; err != nil {
			return apperror.FromDB(err, notFoundMsg)
		}
		var n int64
		if err := tx.Table("asistensi").Where("asistensi_pertemuan_id = ?", id).Count(&n).Error; err != nil {
			return apperror.FromDB(err, "")
		}
		if n > 0 {
			return apperror.Conflict("pertemuan masih memiliki %d data asistensi", n)
		}
		if err := tx.Delete(&model.PertemuanModel{}, id).Error; err != nil {
			return apperror.FromDBDelete(err, notFoundMsg)
		}
		return nil
	})
}
