package service

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"praktikum_backend/internals/constants"
	"praktikum_backend/internals/helpers/apperror"
)

var (
	pdfHead = []byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n1 0 obj\n<< /Type /Catalog >>\nendobj\n")
	oleHead = append([]byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}, make([]byte, 504)...)
	pngHead = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
)

// CLSID Word.Document.8 pada entri root directory (sektor pertama).
var wordClsid = []byte{0x06, 0x09, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0xc0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46}

// docBytes: compound file v3 minimal; directory stream mulai di sektor 0,
// jadi CLSID root ada di offset 512 + 80.
func docBytes() []byte {
	b := make([]byte, 1536)
	copy(b, oleHead[:8])
	b[26] = 0x03
	copy(b[592:], wordClsid)
	return b
}

func zipBytes(t *testing.T, names ...string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range names {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte("<xml/>"))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func docxBytes(t *testing.T) []byte {
	return zipBytes(t, "[Content_Types].xml", "word/document.xml")
}

func TestValidateFile_Accepts(t *testing.T) {
	docx := docxBytes(t)

	cases := []struct {
		name string
		file string
		head []byte
		ext  string
	}{
		{name: "pdf", file: "laporan.pdf", head: pdfHead, ext: ".pdf"},
		{name: "pdf huruf besar", file: "LAPORAN.PDF", head: pdfHead, ext: ".pdf"},
		{name: "doc", file: "laporan.doc", head: docBytes(), ext: ".doc"},
		{name: "docx", file: "laporan.docx", head: docx, ext: ".docx"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ext, ct, err := ValidateFile(tc.file, int64(len(tc.head)), tc.head)
			require.NoError(t, err)
			assert.Equal(t, tc.ext, ext)
			assert.Equal(t, constants.ContentTypeByExt[tc.ext], ct)
		})
	}
}

func TestValidateFile_Rejects(t *testing.T) {
	zipExe := zipBytes(t, "payload.exe")
	xlsxLike := zipBytes(t, "[Content_Types].xml", "xl/workbook.xml")

	cases := []struct {
		name string
		file string
		size int64
		head []byte
	}{
		{name: "kosong", file: "a.pdf", size: 0, head: nil},
		{name: "terlalu besar", file: "a.pdf", size: constants.MaxLaporanSize + 1, head: pdfHead},
		{name: "ekstensi lain", file: "a.exe", size: 10, head: pdfHead},
		{name: "tanpa ekstensi", file: "laporan", size: 10, head: pdfHead},
		{name: "png menyamar pdf", file: "a.pdf", size: 16, head: pngHead},
		{name: "teks menyamar docx", file: "a.docx", size: 11, head: []byte("hello world")},
		{name: "pdf menyamar doc", file: "a.doc", size: 10, head: pdfHead},
		{name: "zip menyamar docx", file: "laporan.docx", size: int64(len(zipExe)), head: zipExe},
		{name: "xlsx menyamar docx", file: "laporan.docx", size: int64(len(xlsxLike)), head: xlsxLike},
		{name: "ole generik menyamar doc", file: "laporan.doc", size: int64(len(oleHead)), head: oleHead},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := ValidateFile(tc.file, tc.size, tc.head)
			var ae *apperror.Error
			require.ErrorAs(t, err, &ae)
			assert.Equal(t, apperror.KindValidation, ae.Kind)
			assert.Equal(t, "file_laporan", ae.Field)
		})
	}
}

func TestValidateFile_ExactLimit(t *testing.T) {
	_, _, err := ValidateFile("a.pdf", constants.MaxLaporanSize, pdfHead)
	assert.NoError(t, err)
}
