package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func TestComputeNilaiAkhir(t *testing.T) {
	got := ComputeNilaiAkhir(f(80), f(90), f(70))
	require.NotNil(t, got)
	assert.Equal(t, 80.0, *got)

	got = ComputeNilaiAkhir(f(0), f(0), f(0))
	require.NotNil(t, got)
	assert.Equal(t, 0.0, *got)

	got = ComputeNilaiAkhir(f(85), f(77), f(91))
	require.NotNil(t, got)
	assert.InDelta(t, 84.4, *got, 1e-9)

	assert.Nil(t, ComputeNilaiAkhir(f(80), nil, f(70)))
	assert.Nil(t, ComputeNilaiAkhir(nil, nil, nil))
}

func TestBeforeSave(t *testing.T) {
	t.Run("komponen lengkap", func(t *testing.T) {
		n := NilaiModel{NilaiPraktikum: f(80), NilaiAsistensi: f(90), NilaiLaporan: f(70)}
		require.NoError(t, n.BeforeSave(nil))
		require.NotNil(t, n.NilaiAkhir)
		assert.Equal(t, 80.0, *n.NilaiAkhir)
	})

	t.Run("baru dan tidak lengkap tetap kosong", func(t *testing.T) {
		n := NilaiModel{NilaiPraktikum: f(80), NilaiLaporan: f(70)}
		require.NoError(t, n.BeforeSave(nil))
		assert.Nil(t, n.NilaiAkhir)
	})

	t.Run("tidak lengkap mempertahankan nilai lama", func(t *testing.T) {
		n := NilaiModel{NilaiPraktikum: f(60), NilaiAkhir: f(75)}
		require.NoError(t, n.BeforeSave(nil))
		assert.Equal(t, 75.0, *n.NilaiAkhir)
	})

	t.Run("idempoten", func(t *testing.T) {
		n := NilaiModel{NilaiPraktikum: f(80), NilaiAsistensi: f(90), NilaiLaporan: f(70)}
		require.NoError(t, n.BeforeSave(nil))
		first := *n.NilaiAkhir
		require.NoError(t, n.BeforeSave(nil))
		assert.Equal(t, first, *n.NilaiAkhir)
	})
}
