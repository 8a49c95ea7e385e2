package constants

import (
	"fmt"
	"slices"
)

const (
	RoleAdmin      = "admin"
	RoleAsistenLab = "asisten_lab"
	RolePraktikan  = "praktikan"
)

// Template pesan error role
const (
	ErrOnlyStaffCanAccess  = "❌ Hanya admin atau asisten lab yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyOwnerCanAccess  = "❌ Hanya pemilik data atau staf yang boleh mengakses fitur %s."
)

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorOwner(feature string) string {
	return fmt.Sprintf(ErrOnlyOwnerCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleAsistenLab,
		RolePraktikan,
	}

	StaffRoles = []string{
		RoleAdmin,
		RoleAsistenLab,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

func IsValidRole(role string) bool {
	return slices.Contains(AllRoles, role)
}

func IsStaff(role string) bool {
	return slices.Contains(StaffRoles, role)
}

// ==========================
// Operasi yang dijaga role
// ==========================

type Operation string

const (
	OpPraktikumRead   Operation = "praktikum.read"
	OpPraktikumWrite  Operation = "praktikum.write"
	OpPraktikumDelete Operation = "praktikum.delete"

	OpPertemuanRead   Operation = "pertemuan.read"
	OpPertemuanWrite  Operation = "pertemuan.write"
	OpPertemuanDelete Operation = "pertemuan.delete"

	OpKelompokRead   Operation = "kelompok.read"
	OpKelompokWrite  Operation = "kelompok.write"
	OpKelompokDelete Operation = "kelompok.delete"

	OpAsistensiRead  Operation = "asistensi.read"
	OpAsistensiWrite Operation = "asistensi.write"

	OpLaporanUpload  Operation = "laporan.upload"
	OpLaporanReadOwn Operation = "laporan.read_own"
	OpLaporanReadAll Operation = "laporan.read_all"
	OpLaporanGrade   Operation = "laporan.grade"

	OpNilaiReadOwn Operation = "nilai.read_own"
	OpNilaiReadAll Operation = "nilai.read_all"
	OpNilaiWrite   Operation = "nilai.write"

	OpUserManage Operation = "user.manage"
)

// permissions bersifat read-only setelah init; jangan dimodifikasi saat runtime.
var permissions = map[Operation][]string{
	OpPraktikumRead:   AllRoles,
	OpPraktikumWrite:  StaffRoles,
	OpPraktikumDelete: AdminOnly,

	OpPertemuanRead:   AllRoles,
	OpPertemuanWrite:  StaffRoles,
	OpPertemuanDelete: AdminOnly,

	OpKelompokRead:   AllRoles,
	OpKelompokWrite:  StaffRoles,
	OpKelompokDelete: AdminOnly,

	OpAsistensiRead:  AllRoles,
	OpAsistensiWrite: StaffRoles,

	OpLaporanUpload:  AllRoles,
	OpLaporanReadOwn: AllRoles,
	OpLaporanReadAll: StaffRoles,
	OpLaporanGrade:   StaffRoles,

	OpNilaiReadOwn: AllRoles,
	OpNilaiReadAll: StaffRoles,
	OpNilaiWrite:   StaffRoles,

	OpUserManage: AdminOnly,
}

// Allowed: apakah role boleh menjalankan operasi. Operasi tak dikenal selalu ditolak.
func Allowed(role string, op Operation) bool {
	roles, ok := permissions[op]
	if !ok {
		return false
	}
	return slices.Contains(roles, role)
}

// RoleMessage memilih pesan error yang sesuai untuk operasi yang ditolak.
func RoleMessage(op Operation) string {
	roles := permissions[op]
	switch {
	case len(roles) == 1 && roles[0] == RoleAdmin:
		return RoleErrorAdmin(string(op))
	case slices.Equal(roles, AllRoles):
		return RoleErrorOwner(string(op))
	default:
		return RoleErrorStaff(string(op))
	}
}
