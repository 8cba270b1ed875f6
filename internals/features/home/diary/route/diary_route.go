package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	diaryCtrl "schoolku_backend/internals/features/home/diary/controller"
	notifsvc "schoolku_backend/internals/features/home/notifications/service"
)

func DiaryTeacherRoutes(r fiber.Router, db *gorm.DB, notifier *notifsvc.NotificationService) {
	ctrl := diaryCtrl.NewDiaryController(db, notifier)

	g := r.Group("/diary")
	g.Get("/", ctrl.GetEntries)
	g.Post("/", ctrl.CreateEntry)
	g.Patch("/:id", ctrl.UpdateEntry)
	g.Delete("/:id", ctrl.DeleteEntry)
}

func DiaryUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := diaryCtrl.NewDiaryController(db, nil)

	r.Get("/diary", ctrl.GetEntries)
}
