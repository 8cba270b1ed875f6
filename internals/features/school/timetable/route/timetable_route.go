package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ttCtrl "schoolku_backend/internals/features/school/timetable/controller"
)

func TimetableAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := ttCtrl.NewTimetableController(db)

	g := r.Group("/timetable")
	g.Get("/", ctrl.GetSlots)
	g.Post("/", ctrl.CreateSlot)
	g.Delete("/:id", ctrl.DeleteSlot)
}

func TimetableUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := ttCtrl.NewTimetableController(db)

	r.Get("/timetable", ctrl.GetSlots)
}
