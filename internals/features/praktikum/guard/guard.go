// Package guard berisi cek keberadaan lintas fitur praktikum tanpa saling import model.
package guard

import (
	"gorm.io/gorm"

	"praktikum_backend/internals/helpers/apperror"
)

func exists(tx *gorm.DB, table, col string, id uint) (bool, error) {
	var ok bool
	err := tx.Raw("SELECT EXISTS(SELECT 1 FROM "+table+" WHERE "+col+" = ?)", id).Scan(&ok).Error
	return ok, err
}

func PraktikumExists(tx *gorm.DB, id uint) error {
	ok, err := exists(tx, "praktikum", "praktikum_id", id)
	if err != nil {
		return apperror.FromDB(err, "")
	}
	if !ok {
		return apperror.NotFound("praktikum %d tidak ditemukan", id)
	}
	return nil
}

func UserExists(tx *gorm.DB, id uint) error {
	ok, err := exists(tx, "users", "id", id)
	if err != nil {
		return apperror.FromDB(err, "")
	}
	if !ok {
		return apperror.NotFound("user %d tidak ditemukan", id)
	}
	return nil
}

// UsersExist memastikan semua id user ada; id pertama yang hilang dilaporkan.
func UsersExist(tx *gorm.DB, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	var found []uint
	if err := tx.Table("users").Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
		return apperror.FromDB(err, "")
	}
	set := make(map[uint]struct{}, len(found))
	for _, id := range found {
		set[id] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := set[id]; !ok {
			return apperror.NotFound("user %d tidak ditemukan", id)
		}
	}
	return nil
}

// PertemuanInPraktikum: NotFound jika pertemuan tidak ada, Validation jika milik praktikum lain.
func PertemuanInPraktikum(tx *gorm.DB, pertemuanID, praktikumID uint) error {
	var owner []uint
	if err := tx.Table("pertemuan").Where("pertemuan_id = ?", pertemuanID).
		Limit(1).Pluck("pertemuan_praktikum_id", &owner).Error; err != nil {
		return apperror.FromDB(err, "")
	}
	if len(owner) == 0 {
		return apperror.NotFound("pertemuan %d tidak ditemukan", pertemuanID)
	}
	if owner[0] != praktikumID {
		return apperror.Validation("asistensi_pertemuan_id", "pertemuan %d bukan bagian dari praktikum %d", pertemuanID, praktikumID)
	}
	return nil
}
