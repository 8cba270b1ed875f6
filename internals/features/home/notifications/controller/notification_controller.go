// file: internals/features/home/notifications/controller/notification_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/home/notifications/model"
	helper "schoolku_backend/internals/helpers"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

/* ===================== LIST MINE ===================== */
// GET /api/u/notifications?unread=true&page=&per_page=
func (ctrl *NotificationController) GetMyNotifications(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.UserNotificationModel{}).
		Where("user_notification_user_id = ?", userID)
	if c.Query("unread") == "true" {
		q = q.Where("user_notification_is_read = ?", false)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung notifikasi")
	}

	var rows []model.UserNotificationModel
	if err := q.Preload("Notification").
		Order("user_notification_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil notifikasi")
	}

	return helper.JsonList(c, "Notifikasi berhasil diambil", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ===================== MARK READ ===================== */
// PATCH /api/u/notifications/:id/read
func (ctrl *NotificationController) MarkRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID notifikasi tidak valid")
	}

	now := time.Now()
	res := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.UserNotificationModel{}).
		Where("user_notification_id = ? AND user_notification_user_id = ?", id, userID).
		Updates(map[string]any{
			"user_notification_is_read": true,
			"user_notification_read_at": now,
		})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui notifikasi")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Notifikasi tidak ditemukan")
	}

	return helper.JsonUpdated(c, "Notifikasi ditandai sudah dibaca", fiber.Map{
		"user_notification_id": id,
		"read_at":              now,
	})
}
