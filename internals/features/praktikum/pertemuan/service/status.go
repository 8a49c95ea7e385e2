package service

import (
	"praktikum_backend/internals/features/praktikum/pertemuan/model"
	"praktikum_backend/internals/helpers/apperror"
)

var statusRank = map[string]int{
	model.StatusBelumMulai:  0,
	model.StatusBerlangsung: 1,
	model.StatusSelesai:     2,
}

// CheckTransition: status hanya boleh maju (lompat boleh, sama = no-op).
func CheckTransition(from, to string) error {
	rf, ok := statusRank[from]
	if !ok {
		return apperror.Validation("pertemuan_status", "status awal tidak dikenal: %s", from)
	}
	rt, ok := statusRank[to]
	if !ok {
		return apperror.Validation("pertemuan_status", "status tidak dikenal: %s", to)
	}
	if rt < rf {
		return apperror.Conflict("status pertemuan tidak boleh mundur dari %s ke %s", from, to)
	}
	return nil
}
