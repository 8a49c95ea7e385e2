package service

import (
	"github.com/gabriel-vasile/mimetype"

	"praktikum_backend/internals/constants"
	"praktikum_backend/internals/helpers/apperror"
)

const fileField = "file_laporan"

// CLSID .doc dan entri word/ pada .docx bisa jauh dari awal file,
// jadi sniffing memakai seluruh isi (maks 5 MiB).
func init() {
	mimetype.SetLimit(uint32(constants.MaxLaporanSize))
}

// ValidateFile memeriksa ukuran, ekstensi, dan isi file.
// data adalah seluruh isi file. Hasilnya ekstensi (lowercase) dan Content-Type untuk storage.
func ValidateFile(filename string, size int64, data []byte) (string, string, error) {
	if size <= 0 || len(data) == 0 {
		return "", "", apperror.Validation(fileField, "file laporan kosong")
	}
	if size > constants.MaxLaporanSize {
		return "", "", apperror.Validation(fileField, "ukuran file maksimal 5 MB")
	}
	ext, ok := constants.LaporanExt(filename)
	if !ok {
		return "", "", apperror.Validation(fileField, "format file harus pdf, doc, atau docx")
	}
	if !sniffMatches(data, constants.LaporanMimeByExt[ext]) {
		return "", "", apperror.Validation(fileField, "isi file tidak sesuai dengan ekstensi %s", ext)
	}
	return ext, constants.ContentTypeByExt[ext], nil
}

// hanya tipe hasil deteksi itu sendiri; parent (zip, OLE2) tidak dihitung
func sniffMatches(data []byte, allowed []string) bool {
	mt := mimetype.Detect(data)
	for _, a := range allowed {
		if mt.Is(a) {
			return true
		}
	}
	return false
}
