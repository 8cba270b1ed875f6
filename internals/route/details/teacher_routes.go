// file: internals/route/details/teacher_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	diaryroute "schoolku_backend/internals/features/home/diary/route"
	attroute "schoolku_backend/internals/features/school/attendance/route"
	classroute "schoolku_backend/internals/features/school/classes/route"
	studentroute "schoolku_backend/internals/features/school/students/route"
	auth "schoolku_backend/internals/middlewares/auth"
)

// /api/t — guru: papan absensi (staging → posting), diary, data kelas.
func TeacherRoutes(r fiber.Router, db *gorm.DB, deps *Deps, jwtSecret string) {
	r.Use(auth.AuthJWT(auth.AuthJWTOpts{Secret: jwtSecret, AllowCookieFallback: true}))
	r.Use(auth.IsTeacher("fitur pengajaran"))

	attroute.AttendanceTeacherRoutes(r, db, deps.Attendance)
	diaryroute.DiaryTeacherRoutes(r, db, deps.Notifier)
	studentroute.StudentTeacherRoutes(r, db)
	classroute.ClassTeacherRoutes(r, db)
}
