// file: internals/features/home/diary/controller/diary_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/home/diary/dto"
	"schoolku_backend/internals/features/home/diary/model"
	notifsvc "schoolku_backend/internals/features/home/notifications/service"
	helper "schoolku_backend/internals/helpers"
)

type DiaryController struct {
	DB       *gorm.DB
	Notifier *notifsvc.NotificationService
}

func NewDiaryController(db *gorm.DB, notifier *notifsvc.NotificationService) *DiaryController {
	return &DiaryController{DB: db, Notifier: notifier}
}

var validate = validator.New()

/* ===================== CREATE ===================== */
// POST /teacher/diary — simpan catatan lalu dorong notifikasi ke kelas
func (ctrl *DiaryController) CreateEntry(c *fiber.Ctx) error {
	teacherID, err := helper.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateDiaryEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	entry := model.DiaryEntryModel{
		DiaryEntryClassID:   req.DiaryEntryClassID,
		DiaryEntryTeacherID: teacherID,
		DiaryEntryDate:      req.DiaryEntryDate,
		DiaryEntryTitle:     req.DiaryEntryTitle,
		DiaryEntryContent:   req.DiaryEntryContent,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&entry).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan catatan")
	}

	// notifikasi best-effort; catatan sudah aman tersimpan
	if ctrl.Notifier != nil {
		data := datatypes.JSON([]byte(`{"type":"diary","diary_entry_id":"` + entry.DiaryEntryID.String() + `"}`))
		if err := ctrl.Notifier.NotifyClass(c.UserContext(), entry.DiaryEntryClassID, teacherID,
			"Catatan kelas baru", entry.DiaryEntryTitle, []string{"diary"}, data); err != nil {
			log.Printf("[WARN] notifikasi catatan %s gagal: %v", entry.DiaryEntryID, err)
		}
	}

	return helper.JsonCreated(c, "Catatan berhasil disimpan", dto.FromDiaryEntryModel(entry))
}

/* ===================== LIST ===================== */
// GET /diary?class_id=&date=
func (ctrl *DiaryController) GetEntries(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.DiaryEntryModel{})
	if raw := c.Query("class_id"); raw != "" {
		classID, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "class_id tidak valid")
		}
		q = q.Where("diary_entry_class_id = ?", classID)
	}
	if date := c.Query("date"); date != "" {
		if _, err := helper.ParseDate(date); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		q = q.Where("diary_entry_date = ?", date)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung catatan")
	}

	var entries []model.DiaryEntryModel
	if err := q.Order("diary_entry_date DESC, diary_entry_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&entries).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil catatan")
	}

	return helper.JsonList(c, "Catatan berhasil diambil",
		dto.FromDiaryEntryModels(entries),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ===================== UPDATE ===================== */
// PATCH /teacher/diary/:id — hanya pemilik catatan
func (ctrl *DiaryController) UpdateEntry(c *fiber.Ctx) error {
	teacherID, err := helper.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID catatan tidak valid")
	}

	var req dto.UpdateDiaryEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var entry model.DiaryEntryModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&entry, "diary_entry_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Catatan tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil catatan")
	}
	if entry.DiaryEntryTeacherID != teacherID {
		return fiber.NewError(fiber.StatusForbidden, "Hanya pembuat catatan yang boleh mengubah")
	}

	if req.DiaryEntryTitle != nil {
		entry.DiaryEntryTitle = *req.DiaryEntryTitle
	}
	if req.DiaryEntryContent != nil {
		entry.DiaryEntryContent = *req.DiaryEntryContent
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&entry).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui catatan")
	}

	return helper.JsonUpdated(c, "Catatan berhasil diperbarui", dto.FromDiaryEntryModel(entry))
}

/* ===================== DELETE ===================== */
// DELETE /teacher/diary/:id — hanya pemilik catatan
func (ctrl *DiaryController) DeleteEntry(c *fiber.Ctx) error {
	teacherID, err := helper.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID catatan tidak valid")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Delete(&model.DiaryEntryModel{}, "diary_entry_id = ? AND diary_entry_teacher_id = ?", id, teacherID)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus catatan")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Catatan tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Catatan berhasil dihapus", fiber.Map{"diary_entry_id": id})
}
