package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attCtrl "schoolku_backend/internals/features/school/attendance/controller"
	svc "schoolku_backend/internals/features/school/attendance/service"
)

// Jalur guru: staging + posting + rekap
func AttendanceTeacherRoutes(r fiber.Router, db *gorm.DB, service *svc.AttendanceService) {
	ctrl := attCtrl.NewTeacherAttendanceController(db, service)

	g := r.Group("/attendance")
	g.Get("/board", ctrl.GetBoard)
	g.Post("/mark", ctrl.MarkAttendance)
	g.Delete("/staged/:student_id", ctrl.UnmarkAttendance)
	g.Post("/post", ctrl.PostAttendance)
	g.Get("/history", ctrl.GetClassHistory)
	g.Get("/export", ctrl.ExportRecap)
}

// Jalur siswa/ortu: riwayat & statistik sendiri (read-only)
func AttendanceUserRoutes(r fiber.Router, db *gorm.DB, service *svc.AttendanceService) {
	ctrl := attCtrl.NewTeacherAttendanceController(db, service)

	g := r.Group("/attendance")
	g.Get("/students/:student_id/history", ctrl.GetStudentHistory)
	g.Get("/students/:student_id/stats", ctrl.GetStudentStats)
}
