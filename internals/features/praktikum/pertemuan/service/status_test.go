package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"praktikum_backend/internals/features/praktikum/pertemuan/dto"
	"praktikum_backend/internals/features/praktikum/pertemuan/model"
	"praktikum_backend/internals/helpers/apperror"
)

func TestCheckTransition(t *testing.T) {
	ok := [][2]string{
		{model.StatusBelumMulai, model.StatusBelumMulai},
		{model.StatusBelumMulai, model.StatusBerlangsung},
		{model.StatusBelumMulai, model.StatusSelesai},
		{model.StatusBerlangsung, model.StatusSelesai},
		{model.StatusSelesai, model.StatusSelesai},
	}
	for _, tr := range ok {
		assert.NoError(t, CheckTransition(tr[0], tr[1]), "%s -> %s", tr[0], tr[1])
	}

	mundur := [][2]string{
		{model.StatusSelesai, model.StatusBelumMulai},
		{model.StatusSelesai, model.StatusBerlangsung},
		{model.StatusBerlangsung, model.StatusBelumMulai},
	}
	for _, tr := range mundur {
		err := CheckTransition(tr[0], tr[1])
		assert.True(t, apperror.Is(err, apperror.KindConflict), "%s -> %s", tr[0], tr[1])
	}

	assert.True(t, apperror.Is(CheckTransition(model.StatusBelumMulai, "batal"), apperror.KindValidation))
}

func TestUpdateApply_DoesNotTouchStatus(t *testing.T) {
	m := model.PertemuanModel{PertemuanNama: "P1", PertemuanUrutan: 1, PertemuanStatus: model.StatusBerlangsung}
	urutan := 3
	status := model.StatusBelumMulai
	dto.UpdatePertemuanRequest{PertemuanUrutan: &urutan, PertemuanStatus: &status}.Apply(&m)

	assert.Equal(t, 3, m.PertemuanUrutan)
	assert.Equal(t, "P1", m.PertemuanNama)
	assert.Equal(t, model.StatusBerlangsung, m.PertemuanStatus)
}
