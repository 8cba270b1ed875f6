package constants

import "fmt"

// Role yang dikenal aplikasi
const (
	RoleOwner   = "owner"
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
	RoleParent  = "parent"
)

// Template pesan error role
const (
	ErrOnlyTeachersCanAccess = "❌ Hanya teacher, admin, atau owner yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess   = "❌ Hanya admin atau owner yang boleh mengakses fitur %s."
)

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleOwner,
		RoleAdmin,
		RoleTeacher,
		RoleStudent,
		RoleParent,
	}

	// Role yang boleh mengelola absensi, materi, dan jadwal
	TeachingRoles = []string{
		RoleOwner,
		RoleAdmin,
		RoleTeacher,
	}

	// Role pengelola data sekolah (siswa, kelas, tagihan)
	AdminRoles = []string{
		RoleOwner,
		RoleAdmin,
	}
)

func RoleAllowed(role string, allowed []string) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
