// file: internals/route/details/user_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeroute "schoolku_backend/internals/features/finance/fees/route"
	diaryroute "schoolku_backend/internals/features/home/diary/route"
	notifroute "schoolku_backend/internals/features/home/notifications/route"
	attroute "schoolku_backend/internals/features/school/attendance/route"
	ttroute "schoolku_backend/internals/features/school/timetable/route"
	authroute "schoolku_backend/internals/features/users/auth/route"
	auth "schoolku_backend/internals/middlewares/auth"
)

// /api/u — semua user login: profil, notifikasi, riwayat absensi anak,
// jadwal, diary kelas, tagihan.
func UserRoutes(r fiber.Router, db *gorm.DB, deps *Deps, jwtSecret string) {
	r.Use(auth.AuthJWT(auth.AuthJWTOpts{Secret: jwtSecret, AllowCookieFallback: true}))

	authroute.AuthUserRoutes(r, db)
	notifroute.NotificationUserRoutes(r, db)
	attroute.AttendanceUserRoutes(r, db, deps.Attendance)
	ttroute.TimetableUserRoutes(r, db)
	diaryroute.DiaryUserRoutes(r, db)
	feeroute.FeeUserRoutes(r, db)
}
