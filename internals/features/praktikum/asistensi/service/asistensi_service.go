package service

import (
	"context"
	"database/sql"
	"math"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"praktikum_backend/internals/features/praktikum/asistensi/dto"
	"praktikum_backend/internals/features/praktikum/asistensi/model"
	"praktikum_backend/internals/features/praktikum/guard"
	"praktikum_backend/internals/helpers/apperror"
)

const notFoundMsg = "data asistensi tidak ditemukan"

type AsistensiService struct {
	DB *gorm.DB
}

func NewAsistensiService(db *gorm.DB) *AsistensiService {
	return &AsistensiService{DB: db}
}

func ValidateFields(m *model.AsistensiModel) error {
	if m.AsistensiNilai != nil && (*m.AsistensiNilai < 0 || *m.AsistensiNilai > 100) {
		return apperror.Validation("asistensi_nilai", "nilai asistensi harus di antara 0 dan 100")
	}
	if m.AsistensiWaktuMulai != nil && m.AsistensiWaktuSelesai != nil &&
		m.AsistensiWaktuSelesai.Before(*m.AsistensiWaktuMulai) {
		return apperror.Validation("asistensi_waktu_selesai", "waktu selesai tidak boleh sebelum waktu mulai")
	}
	return nil
}

func checkRefs(tx *gorm.DB, m *model.AsistensiModel) error {
	if err := guard.UserExists(tx, m.AsistensiUserID); err != nil {
		return err
	}
	if err := guard.PraktikumExists(tx, m.AsistensiPraktikumID); err != nil {
		return err
	}
	return guard.PertemuanInPraktikum(tx, m.AsistensiPertemuanID, m.AsistensiPraktikumID)
}

// Create gagal Conflict bila (user, pertemuan) sudah tercatat.
func (s *AsistensiService) Create(ctx context.Context, m *model.AsistensiModel) error {
	if err := ValidateFields(m); err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkRefs(tx, m); err != nil {
			return err
		}
		if err := tx.Create(m).Error; err != nil {
			return apperror.FromDB(err, notFoundMsg)
		}
		return nil
	})
}

// Upsert: satu statement INSERT ... ON CONFLICT (user, pertemuan) DO UPDATE.
func (s *AsistensiService) Upsert(ctx context.Context, m *model.AsistensiModel) (*model.AsistensiModel, error) {
	if err := ValidateFields(m); err != nil {
		return nil, err
	}
	var out model.AsistensiModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkRefs(tx, m); err != nil {
			return err
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "asistensi_user_id"}, {Name: "asistensi_pertemuan_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"asistensi_praktikum_id",
				"asistensi_kehadiran",
				"asistensi_nilai",
				"asistensi_catatan",
				"asistensi_waktu_mulai",
				"asistensi_waktu_selesai",
				"asistensi_updated_at",
			}),
		}).Create(m).Error; err != nil {
			return apperror.FromDB(err, notFoundMsg)
		}
		return tx.Where("asistensi_user_id = ? AND asistensi_pertemuan_id = ?", m.AsistensiUserID, m.AsistensiPertemuanID).
			Take(&out).Error
	})
	if err != nil {
		return nil, apperror.FromDB(err, notFoundMsg)
	}
	return &out, nil
}

// Update memakai kunci kanonik (user, pertemuan).
func (s *AsistensiService) Update(ctx context.Context, userID, pertemuanID uint, req dto.UpdateAsistensiRequest) (*model.AsistensiModel, error) {
	return s.updateWhere(ctx, req, "asistensi_user_id = ? AND asistensi_pertemuan_id = ?", userID, pertemuanID)
}

// UpdateByPraktikum: kunci lama (user, praktikum). Ditolak Conflict bila
// user punya lebih dari satu asistensi di praktikum tsb.
func (s *AsistensiService) UpdateByPraktikum(ctx context.Context, userID, praktikumID uint, req dto.UpdateAsistensiRequest) (*model.AsistensiModel, error) {
	return s.updateWhere(ctx, req, "asistensi_user_id = ? AND asistensi_praktikum_id = ?", userID, praktikumID)
}

func (s *AsistensiService) updateWhere(ctx context.Context, req dto.UpdateAsistensiRequest, where string, args ...any) (*model.AsistensiModel, error) {
	var out model.AsistensiModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rows []model.AsistensiModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(where, args...).
			Limit(2).
			Find(&rows).Error; err != nil {
			return apperror.FromDB(err, notFoundMsg)
		}
		switch len(rows) {
		case 0:
			return apperror.NotFound(notFoundMsg)
		case 1:
		default:
			return apperror.Conflict("lebih dari satu asistensi cocok; gunakan kunci user + pertemuan")
		}

		out = rows[0]
		req.Apply(&out)
		if err := ValidateFields(&out); err != nil {
			return err
		}
		if err := tx.Save(&out).Error; err != nil {
			return apperror.FromDB(err, notFoundMsg)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AsistensiService) List(ctx context.Context, q dto.ListAsistensiQuery, limit, offset int) ([]model.AsistensiModel, int64, error) {
	tx := s.DB.WithContext(ctx).Model(&model.AsistensiModel{})
	if q.PraktikumID != nil {
		tx = tx.Where("asistensi_praktikum_id = ?", *q.PraktikumID)
	}
	if q.PertemuanID != nil {
		tx = tx.Where("asistensi_pertemuan_id = ?", *q.PertemuanID)
	}
	if q.UserID != nil {
		tx = tx.Where("asistensi_user_id = ?", *q.UserID)
	}
	tx = tx.Session(&gorm.Session{})

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, apperror.FromDB(err, "")
	}
	var rows []model.AsistensiModel
	q2 := tx.Preload("User").Preload("Praktikum").
		Order("asistensi_praktikum_id ASC").Order("asistensi_pertemuan_id ASC").Order("asistensi_user_id ASC")
	if limit > 0 {
		q2 = q2.Limit(limit).Offset(offset)
	}
	if err := q2.Find(&rows).Error; err != nil {
		return nil, 0, apperror.FromDB(err, "")
	}
	return rows, total, nil
}

func (s *AsistensiService) ListByPraktikum(ctx context.Context, praktikumID uint, userID *uint) ([]model.AsistensiModel, error) {
	if err := guard.PraktikumExists(s.DB.WithContext(ctx), praktikumID); err != nil {
		return nil, err
	}
	rows, _, err := s.List(ctx, dto.ListAsistensiQuery{PraktikumID: &praktikumID, UserID: userID}, 0, 0)
	return rows, err
}

func (s *AsistensiService) ListByUser(ctx context.Context, userID uint) ([]model.AsistensiModel, error) {
	rows, _, err := s.List(ctx, dto.ListAsistensiQuery{UserID: &userID}, 0, 0)
	return rows, err
}

// RataRataNilai: rata-rata nilai asistensi yang terisi (NULL diabaikan); nil bila belum ada.
func RataRataNilai(ctx context.Context, tx *gorm.DB, userID, praktikumID uint) (*float64, error) {
	var avg sql.NullFloat64
	err := tx.WithContext(ctx).Model(&model.AsistensiModel{}).
		Select("AVG(asistensi_nilai)").
		Where("asistensi_user_id = ? AND asistensi_praktikum_id = ?", userID, praktikumID).
		Row().Scan(&avg)
	if err != nil {
		return nil, apperror.FromDB(err, "")
	}
	if !avg.Valid {
		return nil, nil
	}
	v := math.Round(avg.Float64*100) / 100
	return &v, nil
}
