package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentCtrl "schoolku_backend/internals/features/school/students/controller"
)

// Jalur admin: kelola data induk siswa
func StudentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := studentCtrl.NewStudentController(db)

	g := r.Group("/students")
	g.Get("/", ctrl.GetStudents)
	g.Get("/:id", ctrl.GetStudent)
	g.Post("/", ctrl.CreateStudent)
	g.Patch("/:id", ctrl.UpdateStudent)
	g.Delete("/:id", ctrl.DeleteStudent)
}

// Jalur guru: read-only (isi papan absensi diambil dari sini)
func StudentTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := studentCtrl.NewStudentController(db)

	g := r.Group("/students")
	g.Get("/", ctrl.GetStudents)
	g.Get("/:id", ctrl.GetStudent)
}
