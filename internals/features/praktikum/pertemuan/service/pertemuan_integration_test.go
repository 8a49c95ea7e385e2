//go:build testutil
// +build testutil

package service_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"praktikum_backend/internals/features/praktikum/pertemuan/dto"
	"praktikum_backend/internals/features/praktikum/pertemuan/model"
	"praktikum_backend/internals/features/praktikum/pertemuan/service"
	praktikumService "praktikum_backend/internals/features/praktikum/praktikum/service"
	"praktikum_backend/internals/helpers/apperror"
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

func newPertemuan(praktikumID uint, urutan int) *model.PertemuanModel {
	m := dto.CreatePertemuanRequest{
		PertemuanPraktikumID: praktikumID,
		PertemuanNama:        fmt.Sprintf("Modul %d", urutan),
		PertemuanUrutan:      urutan,
		PertemuanTanggal:     time.Now().UTC(),
	}.ToModel()
	return &m
}

func TestCreate_DuplicateUrutanConflict(t *testing.T) {
	h.Reset(t)
	ctx := context.Background()
	svc := service.NewPertemuanService(h.DB)
	p := h.CreatePraktikum(t, "Basis Data")

	first := newPertemuan(p, 1)
	require.NoError(t, svc.Create(ctx, first))
	assert.NotZero(t, first.PertemuanID)
	assert.Equal(t, model.StatusBelumMulai, first.PertemuanStatus)

	err := svc.Create(ctx, newPertemuan(p, 1))
	assert.True(t, apperror.Is(err, apperror.KindConflict), "got %v", err)

	// urutan yang sama di praktikum lain boleh
	other := h.CreatePraktikum(t, "Jaringan")
	assert.NoError(t, svc.Create(ctx, newPertemuan(other, 1)))
}

func TestCreate_PraktikumMissing(t *testing.T) {
	h.Reset(t)
	err := service.NewPertemuanService(h.DB).Create(context.Background(), newPertemuan(999, 1))
	assert.True(t, apperror.Is(err, apperror.KindNotFound), "got %v", err)
}

func TestListByPraktikum_OrderedByUrutan(t *testing.T) {
	h.Reset(t)
	ctx := context.Background()
	svc := service.NewPertemuanService(h.DB)
	p := h.CreatePraktikum(t, "Algoritma")

	for _, u := range []int{3, 1, 2} {
		require.NoError(t, svc.Create(ctx, newPertemuan(p, u)))
	}
	rows, err := svc.ListByPraktikum(ctx, p)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for i, r := range rows {
		assert.Equal(t, i+1, r.PertemuanUrutan)
	}
}

func TestUpdate_UrutanCollisionAndStatus(t *testing.T) {
	h.Reset(t)
	ctx := context.Background()
	svc := service.NewPertemuanService(h.DB)
	p := h.CreatePraktikum(t, "Sistem Operasi")

	a := newPertemuan(p, 1)
	b := newPertemuan(p, 2)
	require.NoError(t, svc.Create(ctx, a))
	require.NoError(t, svc.Create(ctx, b))

	one := 1
	_, err := svc.Update(ctx, b.PertemuanID, dto.UpdatePertemuanRequest{PertemuanUrutan: &one})
	assert.True(t, apperror.Is(err, apperror.KindConflict), "got %v", err)

	// urutan sendiri tidak dianggap bentrok
	two := 2
	_, err = svc.Update(ctx, b.PertemuanID, dto.UpdatePertemuanRequest{PertemuanUrutan: &two})
	assert.NoError(t, err)

	selesai := model.StatusSelesai
	got, err := svc.Update(ctx, a.PertemuanID, dto.UpdatePertemuanRequest{PertemuanStatus: &selesai})
	require.NoError(t, err)
	assert.Equal(t, model.StatusSelesai, got.PertemuanStatus)
	assert.Equal(t, 1, got.PertemuanUrutan)

	mundur := model.StatusBerlangsung
	_, err = svc.Update(ctx, a.PertemuanID, dto.UpdatePertemuanRequest{PertemuanStatus: &mundur})
	assert.True(t, apperror.Is(err, apperror.KindConflict), "got %v", err)

	_, err = svc.Update(ctx, 9999, dto.UpdatePertemuanRequest{})
	assert.True(t, apperror.Is(err, apperror.KindNotFound), "got %v", err)
}

func TestDeleteGuards(t *testing.T) {
	h.Reset(t)
	ctx := context.Background()
	svc := service.NewPertemuanService(h.DB)
	praktikumSvc := praktikumService.NewPraktikumService(h.DB)

	p := h.CreatePraktikum(t, "Pemrograman Web")
	pt := newPertemuan(p, 1)
	require.NoError(t, svc.Create(ctx, pt))

	// praktikum yang masih punya pertemuan tidak boleh dihapus
	err := praktikumSvc.Delete(ctx, p)
	assert.True(t, apperror.Is(err, apperror.KindConflict), "got %v", err)

	u := h.CreateUser(t, "Budi", "budi@kampus.ac.id", "praktikan")
	require.NoError(t, h.DB.Exec(
		`INSERT INTO asistensi (asistensi_user_id, asistensi_praktikum_id, asistensi_pertemuan_id) VALUES (?, ?, ?)`,
		u, p, pt.PertemuanID,
	).Error)

	err = svc.Delete(ctx, pt.PertemuanID)
	assert.True(t, apperror.Is(err, apperror.KindConflict), "got %v", err)

	require.NoError(t, h.DB.Exec(`DELETE FROM asistensi`).Error)
	require.NoError(t, svc.Delete(ctx, pt.PertemuanID))
	require.NoError(t, praktikumSvc.Delete(ctx, p))

	_, err = praktikumSvc.Get(ctx, p)
	assert.True(t, apperror.Is(err, apperror.KindNotFound), "got %v", err)
}

// Error FK asli dari Postgres: DELETE yang ditolak RESTRICT dan INSERT ke parent
// yang tidak ada sama-sama membawa table_name tabel anak.
func TestForeignKeyViolation_Translation(t *testing.T) {
	h.Reset(t)
	p := h.CreatePraktikum(t, "Jaringan Komputer")
	pt := h.CreatePertemuan(t, p, 1)
	u := h.CreateUser(t, "Budi", "budi@kampus.ac.id", "praktikan")
	require.NoError(t, h.DB.Exec(
		`INSERT INTO asistensi (asistensi_user_id, asistensi_praktikum_id, asistensi_pertemuan_id) VALUES (?, ?, ?)`,
		u, p, pt,
	).Error)

	delErr := h.DB.Exec(`DELETE FROM pertemuan WHERE pertemuan_id = ?`, pt).Error
	require.Error(t, delErr)
	err := apperror.FromDBDelete(delErr, "pertemuan tidak ditemukan")
	assert.True(t, apperror.Is(err, apperror.KindConflict), "got %v", err)
	assert.Equal(t, "pertemuan masih memiliki data asistensi", err.Error())

	insErr := h.DB.Exec(
		`INSERT INTO asistensi (asistensi_user_id, asistensi_praktikum_id, asistensi_pertemuan_id) VALUES (?, ?, ?)`,
		u, p, 999999,
	).Error
	require.Error(t, insErr)
	assert.True(t, apperror.Is(apperror.FromDB(insErr, ""), apperror.KindNotFound))
}
