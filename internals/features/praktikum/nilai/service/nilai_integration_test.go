//go:build testutil
// +build testutil

package service_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"praktikum_backend/internals/features/praktikum/nilai/model"
	"praktikum_backend/internals/features/praktikum/nilai/service"
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

func v(f float64) *float64 { return &f }

func nilai(user, praktikum uint, p, a, l *float64) *model.NilaiModel {
	return &model.NilaiModel{
		NilaiUserID:      user,
		NilaiPraktikumID: praktikum,
		NilaiPraktikum:   p,
		NilaiAsistensi:   a,
		NilaiLaporan:     l,
	}
}

func TestUpsert_ComputesAkhir(t *testing.T) {
	h.Reset(t)
	ctx := context.Background()
	svc := service.NewNilaiService(h.DB)
	u := h.CreateUser(t, "Budi", "budi@kampus.ac.id", "praktikan")
	p := h.CreatePraktikum(t, "Basis Data")

	got, err := svc.Upsert(ctx, nilai(u, p, v(80), v(90), v(70)))
	require.NoError(t, err)
	require.NotNil(t, got.NilaiAkhir)
	assert.Equal(t, 80.0, *got.NilaiAkhir)

	// komponen tidak lengkap: nilai akhir lama dipertahankan, komponen tetap ditimpa penuh
	got, err = svc.Upsert(ctx, nilai(u, p, v(60), nil, v(70)))
	require.NoError(t, err)
	require.NotNil(t, got.NilaiAkhir)
	assert.Equal(t, 80.0, *got.NilaiAkhir)
	assert.Nil(t, got.NilaiAsistensi)
	assert.Equal(t, 60.0, *got.NilaiPraktikum)

	// idempoten
	again, err := svc.Upsert(ctx, nilai(u, p, v(60), nil, v(70)))
	require.NoError(t, err)
	assert.Equal(t, got.NilaiID, again.NilaiID)
	assert.Equal(t, *got.NilaiAkhir, *again.NilaiAkhir)
}

func TestUpsert_FreshIncompleteStaysNull(t *testing.T) {
	h.Reset(t)
	u := h.CreateUser(t, "Budi", "budi@kampus.ac.id", "praktikan")
	p := h.CreatePraktikum(t, "Basis Data")

	got, err := service.NewNilaiService(h.DB).Upsert(context.Background(), nilai(u, p, v(80), nil, v(70)))
	require.NoError(t, err)
	assert.Nil(t, got.NilaiAkhir)
}

func TestUpsert_Errors(t *testing.T) {
	h.Reset(t)
	ctx := context.Background()
	svc := service.NewNilaiService(h.DB)
	u := h.CreateUser(t, "Budi", "budi@kampus.ac.id", "praktikan")
	p := h.CreatePraktikum(t, "Basis Data")

	_, err := svc.Upsert(ctx, nilai(999, p, v(1), nil, nil))
	assert.True(t, apperror.Is(err, apperror.KindNotFound), "got %v", err)

	_, err = svc.Upsert(ctx, nilai(u, 999, v(1), nil, nil))
	assert.True(t, apperror.Is(err, apperror.KindNotFound), "got %v", err)

	_, err = svc.Upsert(ctx, nilai(u, p, v(101), nil, nil))
	assert.True(t, apperror.Is(err, apperror.KindValidation), "got %v", err)
}

func TestUpsert_ParallelSingleRow(t *testing.T) {
	h.Reset(t)
	ctx := context.Background()
	svc := service.NewNilaiService(h.DB)
	u := h.CreateUser(t, "Budi", "budi@kampus.ac.id", "praktikan")
	p := h.CreatePraktikum(t, "Basis Data")

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.Upsert(ctx, nilai(u, p, v(float64(60+i)), v(80), v(75)))
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}

	var n int64
	require.NoError(t, h.DB.Model(&model.NilaiModel{}).
		Where("nilai_user_id = ? AND nilai_praktikum_id = ?", u, p).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestSummary_NullCountsAsZero(t *testing.T) {
	h.Reset(t)
	ctx := context.Background()
	svc := service.NewNilaiService(h.DB)
	u := h.CreateUser(t, "Budi", "budi@kampus.ac.id", "praktikan")
	p1 := h.CreatePraktikum(t, "Basis Data")
	p2 := h.CreatePraktikum(t, "Jaringan")

	_, err := svc.Upsert(ctx, nilai(u, p1, v(80), v(90), v(70)))
	require.NoError(t, err)
	_, err = svc.Upsert(ctx, nilai(u, p2, v(60), v(50), nil))
	require.NoError(t, err)

	s, err := svc.Summary(ctx, u)
	require.NoError(t, err)
	assert.Len(t, s.Nilai, 2)
	assert.InDelta(t, 35.0, s.RataRata.Laporan, 1e-9)
	assert.InDelta(t, 40.0, s.RataRata.Akhir, 1e-9)

	empty, err := svc.Summary(ctx, h.CreateUser(t, "Citra", "citra@kampus.ac.id", "praktikan"))
	require.NoError(t, err)
	assert.Empty(t, empty.Nilai)
	assert.Zero(t, empty.RataRata.Praktikum)
}

func TestRekap(t *testing.T) {
	h.Reset(t)
	ctx := context.Background()
	svc := service.NewNilaiService(h.DB)
	u := h.CreateUser(t, "Budi", "budi@kampus.ac.id", "praktikan")
	p := h.CreatePraktikum(t, "Basis Data")
	pt1 := h.CreatePertemuan(t, p, 1)
	pt2 := h.CreatePertemuan(t, p, 2)
	pt3 := h.CreatePertemuan(t, p, 3)

	for _, row := range []struct {
		pertemuan uint
		nilai     *float64
	}{{pt1, v(80)}, {pt2, nil}, {pt3, v(90)}} {
		require.NoError(t, h.DB.Exec(
			`INSERT INTO asistensi (asistensi_user_id, asistensi_praktikum_id, asistensi_pertemuan_id, asistensi_nilai)
			 VALUES (?, ?, ?, ?)`, u, p, row.pertemuan, row.nilai).Error)
	}
	require.NoError(t, h.DB.Exec(
		`INSERT INTO laporan (laporan_user_id, laporan_praktikum_id, laporan_file, laporan_nilai) VALUES (?, ?, 'x.pdf', 70)`,
		u, p).Error)

	_, err := svc.Upsert(ctx, nilai(u, p, v(80), nil, nil))
	require.NoError(t, err)

	got, err := svc.Rekap(ctx, u, p)
	require.NoError(t, err)
	assert.Equal(t, 80.0, *got.NilaiPraktikum)
	assert.Equal(t, 85.0, *got.NilaiAsistensi)
	assert.Equal(t, 70.0, *got.NilaiLaporan)
	require.NotNil(t, got.NilaiAkhir)
	assert.InDelta(t, 78.5, *got.NilaiAkhir, 1e-9)
}

func TestExport(t *testing.T) {
	h.Reset(t)
	ctx := context.Background()
	svc := service.NewNilaiService(h.DB)
	p := h.CreatePraktikum(t, "Basis Data")
	zaki := h.CreateUser(t, "Zaki", "zaki@kampus.ac.id", "praktikan")
	ani := h.CreateUser(t, "Ani", "ani@kampus.ac.id", "praktikan")

	_, err := svc.Upsert(ctx, nilai(zaki, p, v(70), v(70), v(70)))
	require.NoError(t, err)
	_, err = svc.Upsert(ctx, nilai(ani, p, v(90), nil, nil))
	require.NoError(t, err)

	wb, nama, err := svc.Export(ctx, p)
	require.NoError(t, err)
	defer wb.Close()
	assert.Equal(t, "Basis Data", nama)

	rows, err := wb.GetRows("Nilai")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 5)
	assert.Equal(t, "Ani", rows[3][1])
	assert.Equal(t, "Zaki", rows[4][1])

	_, _, err = svc.Export(ctx, 9999)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}
