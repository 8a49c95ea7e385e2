package service

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"praktikum_backend/internals/features/praktikum/guard"
	"praktikum_backend/internals/features/praktikum/kelompok/dto"
	"praktikum_backend/internals/features/praktikum/kelompok/model"
	"praktikum_backend/internals/helpers/apperror"
)

const notFoundMsg = "kelompok tidak ditemukan"

type KelompokService struct {
	DB *gorm.DB
}

func NewKelompokService(db *gorm.DB) *KelompokService {
	return &KelompokService{DB: db}
}

// UniqueIDs membuang duplikat dengan urutan tetap.
func UniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// replaceMembers menghapus semua anggota lalu memasukkan daftar baru.
// Wajib dipanggil di dalam transaksi.
func replaceMembers(tx *gorm.DB, kelompokID uint, userIDs []uint) error {
	userIDs = UniqueIDs(userIDs)
	if err := guard.UsersExist(tx, userIDs); err != nil {
		return err
	}
	if err := tx.Where("kelompok_anggota_kelompok_id = ?", kelompokID).
		Delete(&model.KelompokAnggotaModel{}).Error; err != nil {
		return apperror.FromDB(err, "")
	}
	if len(userIDs) == 0 {
		return nil
	}
	rows := make([]model.KelompokAnggotaModel, 0, len(userIDs))
	for _, uid := range userIDs {
		rows = append(rows, model.KelompokAnggotaModel{KelompokAnggotaKelompokID: kelompokID, KelompokAnggotaUserID: uid})
	}
	if err := tx.CreateInBatches(&rows, 200).Error; err != nil {
		return apperror.FromDB(err, "user tidak ditemukan")
	}
	return nil
}

func (s *KelompokService) Create(ctx context.Context, req dto.CreateKelompokRequest) (*dto.KelompokResponse, error) {
	m := model.KelompokModel{
		KelompokPraktikumID: req.KelompokPraktikumID,
		KelompokNama:        strings.TrimSpace(req.KelompokNama),
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := guard.PraktikumExists(tx, m.KelompokPraktikumID); err != nil {
			return err
		}
		if err := tx.Create(&m).Error; err != nil {
			return apperror.FromDB(err, notFoundMsg)
		}
		return replaceMembers(tx, m.KelompokID, req.AnggotaIDs)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, m.KelompokID)
}

// Update: rename dan/atau ganti seluruh anggota dalam satu transaksi.
// Pembatalan request (ctx) membuat seluruh perubahan di-rollback.
func (s *KelompokService) Update(ctx context.Context, id uint, req dto.UpdateKelompokRequest) (*dto.KelompokResponse, error) {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m model.KelompokModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&m, id).Error; err != nil {
			return apperror.FromDB(err, notFoundMsg)
		}
		if req.KelompokNama != nil {
			m.KelompokNama = strings.TrimSpace(*req.KelompokNama)
			if err := tx.Save(&m).Error; err != nil {
				return apperror.FromDB(err, notFoundMsg)
			}
		}
		if req.AnggotaIDs != nil {
			return replaceMembers(tx, id, *req.AnggotaIDs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete: baris anggota ikut terhapus lewat ON DELETE CASCADE.
func (s *KelompokService) Delete(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(&model.KelompokModel{}, id)
	if res.Error != nil {
		return apperror.FromDB(res.Error, notFoundMsg)
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound(notFoundMsg)
	}
	return nil
}

func (s *KelompokService) Get(ctx context.Context, id uint) (*dto.KelompokResponse, error) {
	db := s.DB.WithContext(ctx)
	var m model.KelompokModel
	if err := db.First(&m, id).Error; err != nil {
		return nil, apperror.FromDB(err, notFoundMsg)
	}
	out, err := s.attachMembers(db, []model.KelompokModel{m})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

func (s *KelompokService) ListByPraktikum(ctx context.Context, praktikumID uint) ([]dto.KelompokResponse, error) {
	db := s.DB.WithContext(ctx)
	if err := guard.PraktikumExists(db, praktikumID); err != nil {
		return nil, err
	}
	var rows []model.KelompokModel
	if err := db.Where("kelompok_praktikum_id = ?", praktikumID).
		Order("kelompok_nama ASC").Order("kelompok_id ASC").
		Find(&rows).Error; err != nil {
		return nil, apperror.FromDB(err, "")
	}
	return s.attachMembers(db, rows)
}

func (s *KelompokService) ListByUser(ctx context.Context, userID uint) ([]dto.KelompokResponse, error) {
	db := s.DB.WithContext(ctx)
	var rows []model.KelompokModel
	if err := db.Joins("JOIN kelompok_anggota ka ON ka.kelompok_anggota_kelompok_id = kelompok.kelompok_id").
		Where("ka.kelompok_anggota_user_id = ?", userID).
		Order("kelompok.kelompok_id ASC").
		Find(&rows).Error; err != nil {
		return nil, apperror.FromDB(err, "")
	}
	return s.attachMembers(db, rows)
}

func (s *KelompokService) Members(ctx context.Context, id uint) ([]model.AnggotaView, error) {
	db := s.DB.WithContext(ctx)
	var n int64
	if err := db.Model(&model.KelompokModel{}).Where("kelompok_id = ?", id).Count(&n).Error; err != nil {
		return nil, apperror.FromDB(err, "")
	}
	if n == 0 {
		return nil, apperror.NotFound(notFoundMsg)
	}
	return membersOf(db, []uint{id})
}

func membersOf(db *gorm.DB, kelompokIDs []uint) ([]model.AnggotaView, error) {
	var out []model.AnggotaView
	if len(kelompokIDs) == 0 {
		return out, nil
	}
	err := db.Table("kelompok_anggota ka").
		Select("ka.kelompok_anggota_kelompok_id AS kelompok_id, u.id AS user_id, u.nama, u.email, u.nim").
		Joins("JOIN users u ON u.id = ka.kelompok_anggota_user_id").
		Where("ka.kelompok_anggota_kelompok_id IN ?", kelompokIDs).
		Order("u.id ASC").
		Scan(&out).Error
	if err != nil {
		return nil, apperror.FromDB(err, "")
	}
	return out, nil
}

func (s *KelompokService) attachMembers(db *gorm.DB, rows []model.KelompokModel) ([]dto.KelompokResponse, error) {
	ids := make([]uint, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.KelompokID)
	}
	members, err := membersOf(db, ids)
	if err != nil {
		return nil, err
	}
	byKelompok := make(map[uint][]model.AnggotaView, len(rows))
	for _, m := range members {
		byKelompok[m.KelompokID] = append(byKelompok[m.KelompokID], m)
	}
	out := make([]dto.KelompokResponse, 0, len(rows))
	for _, r := range rows {
		anggota := byKelompok[r.KelompokID]
		if anggota == nil {
			anggota = []model.AnggotaView{}
		}
		out = append(out, dto.KelompokResponse{KelompokModel: r, Anggota: anggota})
	}
	return out, nil
}
