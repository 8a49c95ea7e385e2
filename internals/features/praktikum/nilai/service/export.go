package service

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"praktikum_backend/internals/features/praktikum/nilai/model"
)

const exportSheet = "Nilai"

var exportHeader = []any{"No", "Nama", "NIM", "Email", "Praktikum", "Asistensi", "Laporan", "Akhir"}

// BuildWorkbook menyusun rekap nilai satu praktikum ke satu sheet XLSX.
func BuildWorkbook(praktikumNama string, rows []model.NilaiModel) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		_ = f.Close()
		return nil, err
	}

	if err := f.SetCellValue(exportSheet, "A1", "Rekap Nilai "+praktikumNama); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := f.SetSheetRow(exportSheet, "A3", &exportHeader); err != nil {
		_ = f.Close()
		return nil, err
	}

	for i, r := range rows {
		var nama, nim, email string
		if r.User != nil {
			nama, email = r.User.Nama, r.User.Email
			if r.User.NIM != nil {
				nim = *r.User.NIM
			}
		}
		line := []any{i + 1, nama, nim, email,
			cell(r.NilaiPraktikum), cell(r.NilaiAsistensi), cell(r.NilaiLaporan), cell(r.NilaiAkhir)}
		if err := f.SetSheetRow(exportSheet, fmt.Sprintf("A%d", i+4), &line); err != nil {
			_ = f.Close()
			return nil, err
		}
	}
	return f, nil
}

// sel kosong untuk NULL
func cell(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}
