// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	"schoolku_backend/internals/route/details"
)

// SetupRoutes merakit seluruh jalur API:
//
//	/api/auth   → publik (login, register, refresh; kena rate limit login)
//	/api/public → publik tanpa auth (webhook payment gateway)
//	/api/u      → semua user login
//	/api/t      → guru (absensi, diary, jadwal)
//	/api/a      → admin (data induk, tagihan)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	details.AuthRoutes(api.Group("/auth"), db)
	details.PublicRoutes(api.Group("/public"), db)

	deps := details.BuildDeps(db)

	secret := configs.JWTSecret

	details.UserRoutes(api.Group("/u"), db, deps, secret)
	details.TeacherRoutes(api.Group("/t"), db, deps, secret)
	details.AdminRoutes(api.Group("/a"), db, deps, secret)
}
