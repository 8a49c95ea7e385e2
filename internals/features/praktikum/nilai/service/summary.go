package service

import (
	"praktikum_backend/internals/features/praktikum/nilai/dto"
	"praktikum_backend/internals/features/praktikum/nilai/model"
)

// BuildSummary: NULL dihitung 0 dan pembagi = jumlah baris (bukan jumlah yang terisi).
func BuildSummary(rows []model.NilaiModel) dto.SummaryResponse {
	out := dto.SummaryResponse{Nilai: rows}
	if out.Nilai == nil {
		out.Nilai = []model.NilaiModel{}
	}
	if len(rows) == 0 {
		return out
	}

	var sum dto.RataRata
	for _, r := range rows {
		sum.Praktikum += orZero(r.NilaiPraktikum)
		sum.Asistensi += orZero(r.NilaiAsistensi)
		sum.Laporan += orZero(r.NilaiLaporan)
		sum.Akhir += orZero(r.NilaiAkhir)
	}
	n := float64(len(rows))
	out.RataRata = dto.RataRata{
		Praktikum: sum.Praktikum / n,
		Asistensi: sum.Asistensi / n,
		Laporan:   sum.Laporan / n,
		Akhir:     sum.Akhir / n,
	}
	return out
}

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
