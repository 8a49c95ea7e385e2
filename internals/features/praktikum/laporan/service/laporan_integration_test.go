//go:build testutil
// +build testutil

package service_test

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"praktikum_backend/internals/features/praktikum/laporan/model"
	"praktikum_backend/internals/features/praktikum/laporan/service"
	"praktikum_backend/internals/helpers/apperror"
	"praktikum_backend/internals/helpers/storage"
	"praktikum_backend/internals/testutil/testdb"
)

var h *testdb.Handle

func TestMain(m *testing.M) {
	var err error
	h, err = testdb.Start(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, "testdb:", err)
		os.Exit(1)
	}
	code := m.Run()
	h.Close()
	os.Exit(code)
}

var pdf = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n%%EOF\n")

// fileHeader membungkus konten jadi *multipart.FileHeader seperti yang diterima Fiber.
func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file_laporan", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(10 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["file_laporan"][0]
}

func newService(t *testing.T) (*service.LaporanService, storage.BlobStorage) {
	store, err := storage.NewLocal(t.TempDir())
	require.NoError(t, err)
	return service.NewLaporanService(h.DB, store), store
}

func TestUpload_ReplacesFileAndClearsNilai(t *testing.T) {
	h.Reset(t)
	ctx := context.Background()
	svc, store := newService(t)
	u := h.CreateUser(t, "Budi", "budi@kampus.ac.id", "praktikan")
	p := h.CreatePraktikum(t, "Basis Data")

	first, err := svc.Upload(ctx, u, p, fileHeader(t, "modul1.pdf", pdf))
	require.NoError(t, err)
	assert.Equal(t, "modul1.pdf", first.LaporanFileMeta.Data().OriginalName)
	assert.Equal(t, "application/pdf", first.LaporanFileMeta.Data().ContentType)

	rc, _, err := store.Open(ctx, first.LaporanFile)
	require.NoError(t, err)
	body, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, pdf, body)

	graded, err := svc.UpdateNilai(ctx, u, p, 85)
	require.NoError(t, err)
	assert.Equal(t, 85.0, *graded.LaporanNilai)

	second, err := svc.Upload(ctx, u, p, fileHeader(t, "revisi.pdf", pdf))
	require.NoError(t, err)
	assert.Equal(t, first.LaporanID, second.LaporanID)
	assert.NotEqual(t, first.LaporanFile, second.LaporanFile)
	assert.Nil(t, second.LaporanNilai)

	_, _, err = store.Open(ctx, first.LaporanFile)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	var n int64
	require.NoError(t, h.DB.Model(&model.LaporanModel{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)

	mine, err := svc.Mine(ctx, u)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "revisi.pdf", mine[0].LaporanFileMeta.Data().OriginalName)

	byPraktikum, err := svc.ListByPraktikum(ctx, p)
	require.NoError(t, err)
	require.Len(t, byPraktikum, 1)
	require.NotNil(t, byPraktikum[0].User)
	require.NotNil(t, byPraktikum[0].Praktikum)
	assert.Equal(t, "Budi", byPraktikum[0].User.Nama)
	assert.Equal(t, "Basis Data", byPraktikum[0].Praktikum.PraktikumNama)
}

func TestUpload_Rejects(t *testing.T) {
	h.Reset(t)
	ctx := context.Background()
	svc, _ := newService(t)
	u := h.CreateUser(t, "Budi", "budi@kampus.ac.id", "praktikan")
	p := h.CreatePraktikum(t, "Basis Data")

	_, err := svc.Upload(ctx, u, p, nil)
	assert.True(t, apperror.Is(err, apperror.KindValidation), "got %v", err)

	_, err = svc.Upload(ctx, u, p, fileHeader(t, "gambar.pdf", []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")))
	assert.True(t, apperror.Is(err, apperror.KindValidation), "got %v", err)

	_, err = svc.Upload(ctx, u, p, fileHeader(t, "catatan.txt", []byte("hello")))
	assert.True(t, apperror.Is(err, apperror.KindValidation), "got %v", err)

	// arsip zip biasa yang diganti namanya jadi .docx
	var zbuf bytes.Buffer
	zw := zip.NewWriter(&zbuf)
	zf, err := zw.Create("payload.exe")
	require.NoError(t, err)
	_, err = zf.Write([]byte("MZ\x90\x00"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	_, err = svc.Upload(ctx, u, p, fileHeader(t, "laporan.docx", zbuf.Bytes()))
	assert.True(t, apperror.Is(err, apperror.KindValidation), "got %v", err)

	_, err = svc.Upload(ctx, u, 9999, fileHeader(t, "modul.pdf", pdf))
	assert.True(t, apperror.Is(err, apperror.KindNotFound), "got %v", err)

	var n int64
	require.NoError(t, h.DB.Model(&model.LaporanModel{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestUpdateNilai(t *testing.T) {
	h.Reset(t)
	ctx := context.Background()
	svc, _ := newService(t)
	u := h.CreateUser(t, "Budi", "budi@kampus.ac.id", "praktikan")
	p := h.CreatePraktikum(t, "Basis Data")

	_, err := svc.UpdateNilai(ctx, u, p, 80)
	assert.True(t, apperror.Is(err, apperror.KindNotFound), "got %v", err)

	_, err = svc.Upload(ctx, u, p, fileHeader(t, "modul.pdf", pdf))
	require.NoError(t, err)

	_, err = svc.UpdateNilai(ctx, u, p, 120)
	assert.True(t, apperror.Is(err, apperror.KindValidation), "got %v", err)

	nilai, err := service.NilaiOf(ctx, h.DB, u, p)
	require.NoError(t, err)
	assert.Nil(t, nilai)

	_, err = svc.UpdateNilai(ctx, u, p, 77.5)
	require.NoError(t, err)
	nilai, err = service.NilaiOf(ctx, h.DB, u, p)
	require.NoError(t, err)
	assert.Equal(t, 77.5, *nilai)
}
