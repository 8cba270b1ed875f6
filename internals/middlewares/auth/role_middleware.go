package middleware

import (
	"github.com/gofiber/fiber/v2"

	"schoolku_backend/internals/constants"
	helper "schoolku_backend/internals/helpers"
)

// IsTeacher: hanya teacher/admin/owner (fitur pengajaran: absensi, materi, jadwal)
func IsTeacher(feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := helper.GetRoleFromToken(c)
		if !constants.RoleAllowed(role, constants.TeachingRoles) {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorTeacher(feature))
		}
		return c.Next()
	}
}

// IsAdmin: hanya admin/owner (kelola siswa, kelas, tagihan)
func IsAdmin(feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := helper.GetRoleFromToken(c)
		if !constants.RoleAllowed(role, constants.AdminRoles) {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin(feature))
		}
		return c.Next()
	}
}
