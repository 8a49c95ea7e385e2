package constants

import (
	"path/filepath"
	"strings"
)

// Batas upload laporan.
const MaxLaporanSize int64 = 5 << 20 // 5 MiB

// Ekstensi laporan yang diterima → MIME hasil sniffing yang harus persis cocok.
// Container generik (zip, OLE2) tidak diterima.
var LaporanMimeByExt = map[string][]string{
	".pdf":  {"application/pdf"},
	".doc":  {"application/msword"},
	".docx": {"application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
}

// ContentTypeByExt: Content-Type yang disimpan ke storage.
var ContentTypeByExt = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

func LaporanExt(filename string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	_, ok := LaporanMimeByExt[ext]
	return ext, ok
}
