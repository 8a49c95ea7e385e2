package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"praktikum_backend/internals/constants"
	"praktikum_backend/internals/features/praktikum/guard"
	"praktikum_backend/internals/features/praktikum/laporan/dto"
	"praktikum_backend/internals/features/praktikum/laporan/model"
	"praktikum_backend/internals/helpers/apperror"
	"praktikum_backend/internals/helpers/storage"
	"praktikum_backend/internals/metrics"
)

const notFoundMsg = "laporan tidak ditemukan"

type LaporanService struct {
	DB    *gorm.DB
	Store storage.BlobStorage
}

func NewLaporanService(db *gorm.DB, store storage.BlobStorage) *LaporanService {
	return &LaporanService{DB: db, Store: store}
}

// Upload menyimpan laporan milik userID. Satu slot per (user, praktikum):
// upload ulang mengganti file dan mengosongkan nilai laporan.
func (s *LaporanService) Upload(ctx context.Context, userID, praktikumID uint, fh *multipart.FileHeader) (*model.LaporanModel, error) {
	if fh == nil {
		metrics.LaporanUploads.WithLabelValues("rejected").Inc()
		return nil, apperror.Validation(fileField, "file laporan wajib diunggah")
	}
	if err := guard.PraktikumExists(s.DB.WithContext(ctx), praktikumID); err != nil {
		return nil, err
	}

	f, err := fh.Open()
	if err != nil {
		return nil, apperror.Validation(fileField, "file tidak bisa dibaca")
	}
	defer f.Close()

	// dibaca utuh: ukuran dibatasi MaxLaporanSize, +1 untuk mendeteksi kelebihan
	data, err := io.ReadAll(io.LimitReader(f, constants.MaxLaporanSize+1))
	if err != nil {
		return nil, apperror.Validation(fileField, "file tidak bisa dibaca")
	}
	size := fh.Size
	if int64(len(data)) > size {
		size = int64(len(data))
	}

	ext, contentType, err := ValidateFile(fh.Filename, size, data)
	if err != nil {
		metrics.LaporanUploads.WithLabelValues("rejected").Inc()
		return nil, err
	}

	key := storage.BuildKey(fmt.Sprintf("laporan/%d", praktikumID), ext)
	info, err := s.Store.Put(ctx, key, bytes.NewReader(data), int64(len(data)), contentType)
	if err != nil {
		metrics.LaporanUploads.WithLabelValues("error").Inc()
		return nil, apperror.Internal(err, "gagal menyimpan file laporan")
	}

	row := model.LaporanModel{
		LaporanUserID:      userID,
		LaporanPraktikumID: praktikumID,
		LaporanFile:        info.Key,
		LaporanFileMeta: datatypes.NewJSONType(model.FileMeta{
			OriginalName: fh.Filename,
			Size:         int64(len(data)),
			ContentType:  contentType,
		}),
	}

	var (
		out    model.LaporanModel
		oldKey string
	)
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var prev model.LaporanModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("laporan_user_id = ? AND laporan_praktikum_id = ?", userID, praktikumID).
			Take(&prev).Error
		switch {
		case err == nil:
			oldKey = prev.LaporanFile
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "laporan_user_id"}, {Name: "laporan_praktikum_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"laporan_file",
				"laporan_file_meta",
				"laporan_nilai",
				"laporan_updated_at",
			}),
		}).Create(&row).Error; err != nil {
			return err
		}
		return tx.Where("laporan_user_id = ? AND laporan_praktikum_id = ?", userID, praktikumID).
			Take(&out).Error
	})
	if err != nil {
		s.removeObject(key)
		metrics.LaporanUploads.WithLabelValues("error").Inc()
		return nil, apperror.FromDB(err, notFoundMsg)
	}

	if oldKey != "" && oldKey != info.Key {
		s.removeObject(oldKey)
	}
	metrics.LaporanUploads.WithLabelValues("ok").Inc()
	metrics.LaporanBytes.Add(float64(len(data)))
	return &out, nil
}

// hapus object tanpa menggagalkan request; ctx request bisa saja sudah selesai.
func (s *LaporanService) removeObject(key string) {
	if err := s.Store.Delete(context.Background(), key); err != nil && !errors.Is(err, storage.ErrNotFound) {
		zap.L().Warn("hapus file laporan gagal", zap.String("key", key), zap.Error(err))
	}
}

func (s *LaporanService) List(ctx context.Context, q dto.ListLaporanQuery, limit, offset int) ([]model.LaporanModel, int64, error) {
	tx := s.DB.WithContext(ctx).Model(&model.LaporanModel{})
	if q.PraktikumID != nil {
		tx = tx.Where("laporan_praktikum_id = ?", *q.PraktikumID)
	}
	if q.UserID != nil {
		tx = tx.Where("laporan_user_id = ?", *q.UserID)
	}
	tx = tx.Session(&gorm.Session{})

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, apperror.FromDB(err, "")
	}
	var rows []model.LaporanModel
	q2 := tx.Preload("User").Preload("Praktikum").
		Order("laporan_updated_at DESC").Order("laporan_id DESC")
	if limit > 0 {
		q2 = q2.Limit(limit).Offset(offset)
	}
	if err := q2.Find(&rows).Error; err != nil {
		return nil, 0, apperror.FromDB(err, "")
	}
	return rows, total, nil
}

func (s *LaporanService) ListByPraktikum(ctx context.Context, praktikumID uint) ([]model.LaporanModel, error) {
	if err := guard.PraktikumExists(s.DB.WithContext(ctx), praktikumID); err != nil {
		return nil, err
	}
	rows, _, err := s.List(ctx, dto.ListLaporanQuery{PraktikumID: &praktikumID}, 0, 0)
	return rows, err
}

func (s *LaporanService) ListByUser(ctx context.Context, userID uint) ([]model.LaporanModel, error) {
	rows, _, err := s.List(ctx, dto.ListLaporanQuery{UserID: &userID}, 0, 0)
	return rows, err
}

// Mine: laporan milik pemanggil.
func (s *LaporanService) Mine(ctx context.Context, callerID uint) ([]model.LaporanModel, error) {
	return s.ListByUser(ctx, callerID)
}

func (s *LaporanService) Get(ctx context.Context, id uint) (*model.LaporanModel, error) {
	var m model.LaporanModel
	if err := s.DB.WithContext(ctx).First(&m, "laporan_id = ?", id).Error; err != nil {
		return nil, apperror.FromDB(err, notFoundMsg)
	}
	return &m, nil
}

// Nilai laporan yang sudah diberi; nil bila belum ada laporan atau belum dinilai.
func NilaiOf(ctx context.Context, tx *gorm.DB, userID, praktikumID uint) (*float64, error) {
	var rows []model.LaporanModel
	if err := tx.WithContext(ctx).
		Where("laporan_user_id = ? AND laporan_praktikum_id = ?", userID, praktikumID).
		Limit(1).Find(&rows).Error; err != nil {
		return nil, apperror.FromDB(err, "")
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0].LaporanNilai, nil
}

func (s *LaporanService) UpdateNilai(ctx context.Context, userID, praktikumID uint, nilai float64) (*model.LaporanModel, error) {
	if nilai < 0 || nilai > 100 {
		return nil, apperror.Validation("laporan_nilai", "nilai laporan harus di antara 0 dan 100")
	}
	var m model.LaporanModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("laporan_user_id = ? AND laporan_praktikum_id = ?", userID, praktikumID).
			Take(&m).Error; err != nil {
			return err
		}
		m.LaporanNilai = &nilai
		return tx.Model(&m).Update("laporan_nilai", nilai).Error
	})
	if err != nil {
		return nil, apperror.FromDB(err, notFoundMsg)
	}
	return &m, nil
}

// Open membuka isi file laporan dari storage.
func (s *LaporanService) Open(ctx context.Context, m *model.LaporanModel) (io.ReadCloser, storage.ObjectInfo, error) {
	rc, info, err := s.Store.Open(ctx, m.LaporanFile)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, storage.ObjectInfo{}, apperror.NotFound("file laporan tidak ditemukan di storage")
		}
		return nil, storage.ObjectInfo{}, apperror.Internal(err, "gagal membaca file laporan")
	}
	return rc, info, nil
}
