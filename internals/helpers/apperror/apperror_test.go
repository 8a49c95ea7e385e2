package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestFromDB_RecordNotFound(t *testing.T) {
	err := FromDB(fmt.Errorf("wrap: %w", gorm.ErrRecordNotFound), "praktikum tidak ditemukan")

	assert.True(t, Is(err, KindNotFound))
	assert.Equal(t, "praktikum tidak ditemukan", err.Error())
}

func TestFromDB_PgCodes(t *testing.T) {
	cases := []struct {
		name string
		pg   *pgconn.PgError
		kind Kind
		msg  string
	}{
		{
			name: "unique urutan",
			pg:   &pgconn.PgError{Code: "23505", ConstraintName: "uq_pertemuan_praktikum_urutan"},
			kind: KindConflict,
			msg:  "urutan pertemuan sudah dipakai pada praktikum ini",
		},
		{
			name: "insert under vanished parent",
			pg:   &pgconn.PgError{Code: "23503", TableName: "asistensi", ConstraintName: "asistensi_asistensi_pertemuan_id_fkey"},
			kind: KindNotFound,
		},
		{
			name: "missing parent",
			pg:   &pgconn.PgError{Code: "23503", ConstraintName: "nilai_nilai_user_id_fkey"},
			kind: KindNotFound,
		},
		{
			name: "check range",
			pg:   &pgconn.PgError{Code: "23514", ConstraintName: "nilai_nilai_akhir_check"},
			kind: KindValidation,
		},
		{
			name: "other",
			pg:   &pgconn.PgError{Code: "57014"},
			kind: KindInternal,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := FromDB(tc.pg, "x")
			assert.Equal(t, tc.kind, KindOf(err))
			if tc.msg != "" {
				assert.Equal(t, tc.msg, err.Error())
			}
		})
	}
}

// Postgres mengisi table_name dengan tabel anak untuk DELETE yang ditolak RESTRICT.
func TestFromDBDelete_RestrictIsConflict(t *testing.T) {
	pg := &pgconn.PgError{Code: "23503", TableName: "asistensi", ConstraintName: "asistensi_asistensi_pertemuan_id_fkey"}

	err := FromDBDelete(fmt.Errorf("delete: %w", pg), "pertemuan tidak ditemukan")
	assert.Equal(t, KindConflict, KindOf(err))
	assert.Equal(t, "pertemuan masih memiliki data asistensi", err.Error())

	err = FromDBDelete(&pgconn.PgError{Code: "23503", TableName: "nilai", ConstraintName: "nilai_nilai_praktikum_id_fkey"}, "x")
	assert.Equal(t, KindConflict, KindOf(err))
	assert.Equal(t, "data masih dirujuk: nilai_nilai_praktikum_id_fkey", err.Error())

	// selain FK tetap lewat FromDB
	err = FromDBDelete(fmt.Errorf("wrap: %w", gorm.ErrRecordNotFound), "pertemuan tidak ditemukan")
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, "pertemuan tidak ditemukan", err.Error())

	orig := NotFound("hilang")
	assert.Same(t, orig, FromDBDelete(orig, "x"))
}

func TestFromDB_KeepsDomainError(t *testing.T) {
	orig := Conflict("sudah ada")
	assert.Same(t, orig, FromDB(fmt.Errorf("ctx: %w", orig), "x"))
	assert.Nil(t, FromDB(nil, "x"))
}

func TestStatus(t *testing.T) {
	assert.Equal(t, fiber.StatusNotFound, NotFound("a").Status())
	assert.Equal(t, fiber.StatusConflict, Conflict("a").Status())
	assert.Equal(t, fiber.StatusUnprocessableEntity, Validation("f", "a").Status())
	assert.Equal(t, fiber.StatusInternalServerError, Internal(errors.New("boom"), "a").Status())
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
}
