package service

import (
	"context"
	"errors"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	asistensiService "praktikum_backend/internals/features/praktikum/asistensi/service"
	"praktikum_backend/internals/features/praktikum/guard"
	laporanService "praktikum_backend/internals/features/praktikum/laporan/service"
	"praktikum_backend/internals/features/praktikum/nilai/dto"
	"praktikum_backend/internals/features/praktikum/nilai/model"
	"praktikum_backend/internals/helpers/apperror"
	"praktikum_backend/internals/metrics"
)

const notFoundMsg = "nilai tidak ditemukan"

type NilaiService struct {
	DB *gorm.DB
}

func NewNilaiService(db *gorm.DB) *NilaiService {
	return &NilaiService{DB: db}
}

func ValidateScores(m *model.NilaiModel) error {
	for _, f := range []struct {
		field string
		v     *float64
	}{
		{"nilai_praktikum", m.NilaiPraktikum},
		{"nilai_asistensi", m.NilaiAsistensi},
		{"nilai_laporan", m.NilaiLaporan},
	} {
		if f.v != nil && (*f.v < 0 || *f.v > 100) {
			return apperror.Validation(f.field, "%s harus di antara 0 dan 100", f.field)
		}
	}
	return nil
}

// Upsert menimpa penuh ketiga komponen untuk (user, praktikum) dalam satu statement.
// nilai_akhir lama dipertahankan bila komponen belum lengkap.
func (s *NilaiService) Upsert(ctx context.Context, m *model.NilaiModel) (*model.NilaiModel, error) {
	if err := ValidateScores(m); err != nil {
		return nil, err
	}
	var out *model.NilaiModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := guard.UserExists(tx, m.NilaiUserID); err != nil {
			return err
		}
		if err := guard.PraktikumExists(tx, m.NilaiPraktikumID); err != nil {
			return err
		}
		var err error
		out, err = upsertTx(tx, m)
		return err
	})
	if err != nil {
		return nil, apperror.FromDB(err, notFoundMsg)
	}
	metrics.NilaiUpserts.Inc()
	return out, nil
}

func upsertTx(tx *gorm.DB, m *model.NilaiModel) (*model.NilaiModel, error) {
	set := clause.AssignmentColumns([]string{
		"nilai_praktikum",
		"nilai_asistensi",
		"nilai_laporan",
		"nilai_updated_at",
	})
	set = append(set, clause.Assignment{
		Column: clause.Column{Name: "nilai_akhir"},
		Value:  gorm.Expr("COALESCE(EXCLUDED.nilai_akhir, nilai.nilai_akhir)"),
	})

	if err := tx.Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "nilai_user_id"}, {Name: "nilai_praktikum_id"}},
		DoUpdates: set,
	}).Create(m).Error; err != nil {
		return nil, err
	}

	var out model.NilaiModel
	if err := tx.Where("nilai_user_id = ? AND nilai_praktikum_id = ?", m.NilaiUserID, m.NilaiPraktikumID).
		Take(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

// Rekap mengisi nilai_asistensi (rata-rata asistensi yang dinilai) dan nilai_laporan
// dari laporan, nilai_praktikum yang sudah ada tetap dipakai.
func (s *NilaiService) Rekap(ctx context.Context, userID, praktikumID uint) (*model.NilaiModel, error) {
	var out *model.NilaiModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := guard.UserExists(tx, userID); err != nil {
			return err
		}
		if err := guard.PraktikumExists(tx, praktikumID); err != nil {
			return err
		}

		m := model.NilaiModel{NilaiUserID: userID, NilaiPraktikumID: praktikumID}

		var prev model.NilaiModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("nilai_user_id = ? AND nilai_praktikum_id = ?", userID, praktikumID).
			Take(&prev).Error
		switch {
		case err == nil:
			m.NilaiPraktikum = prev.NilaiPraktikum
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		if m.NilaiAsistensi, err = asistensiService.RataRataNilai(ctx, tx, userID, praktikumID); err != nil {
			return err
		}
		if m.NilaiLaporan, err = laporanService.NilaiOf(ctx, tx, userID, praktikumID); err != nil {
			return err
		}

		out, err = upsertTx(tx, &m)
		return err
	})
	if err != nil {
		return nil, apperror.FromDB(err, notFoundMsg)
	}
	metrics.NilaiUpserts.Inc()
	return out, nil
}

func (s *NilaiService) List(ctx context.Context, q dto.ListNilaiQuery, limit, offset int) ([]model.NilaiModel, int64, error) {
	tx := s.DB.WithContext(ctx).Model(&model.NilaiModel{})
	if q.PraktikumID != nil {
		tx = tx.Where("nilai_praktikum_id = ?", *q.PraktikumID)
	}
	if q.UserID != nil {
		tx = tx.Where("nilai_user_id = ?", *q.UserID)
	}
	tx = tx.Session(&gorm.Session{})

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, apperror.FromDB(err, "")
	}

	var rows []model.NilaiModel
	q2 := tx.Preload("User").Preload("Praktikum").
		Order("nilai_praktikum_id ASC").Order("nilai_user_id ASC")
	if limit > 0 {
		q2 = q2.Limit(limit).Offset(offset)
	}
	if err := q2.Find(&rows).Error; err != nil {
		return nil, 0, apperror.FromDB(err, "")
	}
	return rows, total, nil
}

func (s *NilaiService) ListByUser(ctx context.Context, userID uint) ([]model.NilaiModel, error) {
	rows, _, err := s.List(ctx, dto.ListNilaiQuery{UserID: &userID}, 0, 0)
	return rows, err
}

func (s *NilaiService) ListByPraktikum(ctx context.Context, praktikumID uint) ([]model.NilaiModel, error) {
	if err := guard.PraktikumExists(s.DB.WithContext(ctx), praktikumID); err != nil {
		return nil, err
	}
	rows, _, err := s.List(ctx, dto.ListNilaiQuery{PraktikumID: &praktikumID}, 0, 0)
	return rows, err
}

func (s *NilaiService) Summary(ctx context.Context, userID uint) (dto.SummaryResponse, error) {
	rows, err := s.ListByUser(ctx, userID)
	if err != nil {
		return dto.SummaryResponse{}, err
	}
	return BuildSummary(rows), nil
}

// Export: workbook rekap nilai satu praktikum, urut nama mahasiswa.
func (s *NilaiService) Export(ctx context.Context, praktikumID uint) (*excelize.File, string, error) {
	var p model.PraktikumRingkas
	if err := s.DB.WithContext(ctx).First(&p, "praktikum_id = ?", praktikumID).Error; err != nil {
		return nil, "", apperror.FromDB(err, "praktikum tidak ditemukan")
	}

	var rows []model.NilaiModel
	if err := s.DB.WithContext(ctx).
		Joins("User").
		Where("nilai.nilai_praktikum_id = ?", praktikumID).
		Order(`"User"."nama" ASC`).
		Find(&rows).Error; err != nil {
		return nil, "", apperror.FromDB(err, "")
	}

	f, err := BuildWorkbook(p.PraktikumNama, rows)
	if err != nil {
		return nil, "", apperror.Internal(err, "gagal menyusun file export")
	}
	return f, p.PraktikumNama, nil
}
