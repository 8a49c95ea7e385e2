// Package apperror holds the domain error taxonomy shared by every feature
// service: NotFound, Conflict, Validation, plus Internal for storage failures.
package apperror

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Kind string

const (
	KindNotFound   Kind = "NOT_FOUND"
	KindConflict   Kind = "CONFLICT"
	KindValidation Kind = "VALIDATION_ERROR"
	KindInternal   Kind = "INTERNAL_ERROR"
)

// Postgres SQLSTATE yang diterjemahkan.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgNotNullViolation    = "23502"
)

type Error struct {
	Kind    Kind
	Message string
	Field   string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Kind == KindInternal {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Status memetakan Kind ke HTTP status.
func (e *Error) Status() int {
	switch e.Kind {
	case KindNotFound:
		return fiber.StatusNotFound
	case KindConflict:
		return fiber.StatusConflict
	case KindValidation:
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func Validation(field, format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: fmt.Sprintf(format, args...)}
}

func Internal(err error, msg string) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}

func Is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// ConstraintMessages memberi pesan yang ramah untuk constraint yang dikenal.
var ConstraintMessages = map[string]string{
	"uq_pertemuan_praktikum_urutan": "urutan pertemuan sudah dipakai pada praktikum ini",
	"uq_asistensi_user_pertemuan":   "asistensi untuk user dan pertemuan ini sudah ada",
	"uq_laporan_user_praktikum":     "laporan untuk user dan praktikum ini sudah ada",
	"uq_nilai_user_praktikum":       "nilai untuk user dan praktikum ini sudah ada",
	"uq_users_email":                "email sudah terdaftar",
	"uq_users_nim":                  "nim sudah terdaftar",

	"pertemuan_pertemuan_praktikum_id_fkey": "praktikum masih memiliki pertemuan",
	"asistensi_asistensi_pertemuan_id_fkey": "pertemuan masih memiliki data asistensi",
}

// FromDB menerjemahkan error GORM/Postgres ke taksonomi domain.
// notFoundMsg dipakai untuk gorm.ErrRecordNotFound.
func FromDB(err error, notFoundMsg string) error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound("%s", notFoundMsg)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		msg, known := ConstraintMessages[pgErr.ConstraintName]
		switch pgErr.Code {
		case pgUniqueViolation:
			if !known {
				msg = "data duplikat: " + pgErr.ConstraintName
			}
			return &Error{Kind: KindConflict, Message: msg, Err: err}
		case pgForeignKeyViolation:
			// INSERT/UPDATE ke parent yang tidak ada; DELETE memakai FromDBDelete
			return &Error{Kind: KindNotFound, Message: "data referensi tidak ditemukan (" + pgErr.ConstraintName + ")", Err: err}
		case pgCheckViolation, pgNotNullViolation:
			field := pgErr.ColumnName
			if field == "" {
				field = pgErr.ConstraintName
			}
			return &Error{Kind: KindValidation, Field: field, Message: "nilai tidak valid: " + field, Err: err}
		}
	}
	return Internal(err, "kesalahan database")
}

// FromDBDelete dipakai untuk DELETE: pelanggaran FK di sini berarti baris masih
// dirujuk tabel anak (ON DELETE RESTRICT). Postgres mengisi table_name dengan
// tabel anak untuk INSERT maupun DELETE, jadi operasinya yang membedakan.
func FromDBDelete(err error, notFoundMsg string) error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		msg, ok := ConstraintMessages[pgErr.ConstraintName]
		if !ok {
			msg = "data masih dirujuk: " + pgErr.ConstraintName
		}
		return &Error{Kind: KindConflict, Message: msg, Err: err}
	}
	return FromDB(err, notFoundMsg)
}
