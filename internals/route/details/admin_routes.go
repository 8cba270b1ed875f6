// file: internals/route/details/admin_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeroute "schoolku_backend/internals/features/finance/fees/route"
	classroute "schoolku_backend/internals/features/school/classes/route"
	studentroute "schoolku_backend/internals/features/school/students/route"
	ttroute "schoolku_backend/internals/features/school/timetable/route"
	auth "schoolku_backend/internals/middlewares/auth"
)

// /api/a — admin: data induk siswa/kelas, jadwal pelajaran, tagihan.
func AdminRoutes(r fiber.Router, db *gorm.DB, deps *Deps, jwtSecret string) {
	r.Use(auth.AuthJWT(auth.AuthJWTOpts{Secret: jwtSecret, AllowCookieFallback: true}))
	r.Use(auth.IsAdmin("administrasi sekolah"))

	studentroute.StudentAdminRoutes(r, db)
	classroute.ClassAdminRoutes(r, db)
	ttroute.TimetableAdminRoutes(r, db)
	feeroute.FeeAdminRoutes(r, db)
}
