package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classCtrl "schoolku_backend/internals/features/school/classes/controller"
)

func ClassAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := classCtrl.NewClassController(db)

	g := r.Group("/classes")
	g.Get("/", ctrl.GetClasses)
	g.Get("/:id", ctrl.GetClass)
	g.Post("/", ctrl.CreateClass)
	g.Patch("/:id", ctrl.UpdateClass)
	g.Delete("/:id", ctrl.DeleteClass)
}

func ClassTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := classCtrl.NewClassController(db)

	g := r.Group("/classes")
	g.Get("/", ctrl.GetClasses)
	g.Get("/:id", ctrl.GetClass)
}
