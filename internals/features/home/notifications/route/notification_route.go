package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notifCtrl "schoolku_backend/internals/features/home/notifications/controller"
)

func NotificationUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := notifCtrl.NewNotificationController(db)

	g := r.Group("/notifications")
	g.Get("/", ctrl.GetMyNotifications)
	g.Patch("/:id/read", ctrl.MarkRead)
}
