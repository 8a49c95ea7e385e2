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

	"praktikum_backend/internals/features/praktikum/asistensi/dto"
	"praktikum_backend/internals/features/praktikum/asistensi/model"
	"praktikum_backend/internals/features/praktikum/asistensi/service"
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

func score(v float64) *float64 { return &v }

type fixture struct {
	user, praktikum, pertemuan1, pertemuan2 uint
}

func setup(t *testing.T) fixture {
	h.Reset(t)
	p := h.CreatePraktikum(t, "Basis Data")
	return fixture{
		user:       h.CreateUser(t, "Budi", "budi@kampus.ac.id", "praktikan"),
		praktikum:  p,
		pertemuan1: h.CreatePertemuan(t, p, 1),
		pertemuan2: h.CreatePertemuan(t, p, 2),
	}
}

func (f fixture) row(pertemuanID uint) *model.AsistensiModel {
	return &model.AsistensiModel{
		AsistensiUserID:      f.user,
		AsistensiPraktikumID: f.praktikum,
		AsistensiPertemuanID: pertemuanID,
		AsistensiKehadiran:   true,
	}
}

func TestCreate_UniquePerUserPertemuan(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	svc := service.NewAsistensiService(h.DB)

	require.NoError(t, svc.Create(ctx, f.row(f.pertemuan1)))
	err := svc.Create(ctx, f.row(f.pertemuan1))
	assert.True(t, apperror.Is(err, apperror.KindConflict), "got %v", err)

	assert.NoError(t, svc.Create(ctx, f.row(f.pertemuan2)))
}

func TestCreate_References(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	svc := service.NewAsistensiService(h.DB)

	bad := f.row(f.pertemuan1)
	bad.AsistensiUserID = 999
	assert.True(t, apperror.Is(svc.Create(ctx, bad), apperror.KindNotFound))

	bad = f.row(f.pertemuan1)
	bad.AsistensiPraktikumID = 999
	assert.True(t, apperror.Is(svc.Create(ctx, bad), apperror.KindNotFound))

	bad = f.row(999)
	assert.True(t, apperror.Is(svc.Create(ctx, bad), apperror.KindNotFound))

	// pertemuan milik praktikum lain
	lain := h.CreatePraktikum(t, "Jaringan")
	asing := h.CreatePertemuan(t, lain, 1)
	err := svc.Create(ctx, f.row(asing))
	var ae *apperror.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, apperror.KindValidation, ae.Kind)

	mulai := time.Now().UTC()
	selesai := mulai.Add(-time.Minute)
	bad = f.row(f.pertemuan1)
	bad.AsistensiWaktuMulai, bad.AsistensiWaktuSelesai = &mulai, &selesai
	assert.True(t, apperror.Is(svc.Create(ctx, bad), apperror.KindValidation))
}

func TestUpsert_SingleRow(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	svc := service.NewAsistensiService(h.DB)

	r := f.row(f.pertemuan1)
	r.AsistensiNilai = score(70)
	first, err := svc.Upsert(ctx, r)
	require.NoError(t, err)

	r = f.row(f.pertemuan1)
	r.AsistensiNilai = score(88)
	r.AsistensiKehadiran = false
	second, err := svc.Upsert(ctx, r)
	require.NoError(t, err)

	assert.Equal(t, first.AsistensiID, second.AsistensiID)
	assert.Equal(t, 88.0, *second.AsistensiNilai)
	assert.False(t, second.AsistensiKehadiran)

	var n int64
	require.NoError(t, h.DB.Model(&model.AsistensiModel{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestUpdate_CanonicalAndLegacyKey(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	svc := service.NewAsistensiService(h.DB)

	_, err := svc.UpdateByPraktikum(ctx, f.user, f.praktikum, dto.UpdateAsistensiRequest{AsistensiNilai: score(50)})
	assert.True(t, apperror.Is(err, apperror.KindNotFound), "got %v", err)

	require.NoError(t, svc.Create(ctx, f.row(f.pertemuan1)))

	got, err := svc.UpdateByPraktikum(ctx, f.user, f.praktikum, dto.UpdateAsistensiRequest{AsistensiNilai: score(75)})
	require.NoError(t, err)
	assert.Equal(t, 75.0, *got.AsistensiNilai)
	assert.True(t, got.AsistensiKehadiran)

	require.NoError(t, svc.Create(ctx, f.row(f.pertemuan2)))
	_, err = svc.UpdateByPraktikum(ctx, f.user, f.praktikum, dto.UpdateAsistensiRequest{AsistensiNilai: score(80)})
	assert.True(t, apperror.Is(err, apperror.KindConflict), "got %v", err)

	got, err = svc.Update(ctx, f.user, f.pertemuan2, dto.UpdateAsistensiRequest{AsistensiNilai: score(90)})
	require.NoError(t, err)
	assert.Equal(t, 90.0, *got.AsistensiNilai)

	_, err = svc.Update(ctx, f.user, 9999, dto.UpdateAsistensiRequest{})
	assert.True(t, apperror.Is(err, apperror.KindNotFound), "got %v", err)

	avg, err := service.RataRataNilai(ctx, h.DB, f.user, f.praktikum)
	require.NoError(t, err)
	require.NotNil(t, avg)
	assert.InDelta(t, 82.5, *avg, 1e-9)
}

func TestList_Filters(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	svc := service.NewAsistensiService(h.DB)
	other := h.CreateUser(t, "Citra", "citra@kampus.ac.id", "praktikan")

	require.NoError(t, svc.Create(ctx, f.row(f.pertemuan1)))
	require.NoError(t, svc.Create(ctx, f.row(f.pertemuan2)))
	r := f.row(f.pertemuan1)
	r.AsistensiUserID = other
	require.NoError(t, svc.Create(ctx, r))

	rows, total, err := svc.List(ctx, dto.ListAsistensiQuery{PertemuanID: &f.pertemuan1}, 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, rows, 2)
	for _, r := range rows {
		require.NotNil(t, r.User)
		require.NotNil(t, r.Praktikum)
		assert.Equal(t, "Basis Data", r.Praktikum.PraktikumNama)
		assert.False(t, r.Praktikum.PraktikumTanggalMulai.IsZero())
	}
	assert.ElementsMatch(t, []string{"Budi", "Citra"}, []string{rows[0].User.Nama, rows[1].User.Nama})

	mine, err := svc.ListByUser(ctx, f.user)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	only, err := svc.ListByPraktikum(ctx, f.praktikum, &other)
	require.NoError(t, err)
	require.Len(t, only, 1)
	assert.Equal(t, other, only[0].AsistensiUserID)
	require.NotNil(t, only[0].User)
	assert.Equal(t, "citra@kampus.ac.id", only[0].User.Email)

	_, err = svc.ListByPraktikum(ctx, 9999, nil)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}
