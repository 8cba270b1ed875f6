// file: internals/features/school/timetable/controller/timetable_controller.go
package controller

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/timetable/dto"
	"schoolku_backend/internals/features/school/timetable/model"
	"schoolku_backend/internals/features/school/timetable/service"
	helper "schoolku_backend/internals/helpers"
)

type TimetableController struct {
	DB *gorm.DB
}

func NewTimetableController(db *gorm.DB) *TimetableController {
	return &TimetableController{DB: db}
}

var validate = validator.New()

/* ===================== LIST ===================== */
// GET /timetable?class_id=&teacher_id=&day=
func (ctrl *TimetableController) GetSlots(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.LectureSlotModel{})

	if raw := c.Query("class_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "class_id tidak valid")
		}
		q = q.Where("lecture_slot_class_id = ?", id)
	}
	if raw := c.Query("teacher_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "teacher_id tidak valid")
		}
		q = q.Where("lecture_slot_teacher_id = ?", id)
	}
	if raw := c.Query("day"); raw != "" {
		q = q.Where("lecture_slot_day_of_week = ?", raw)
	}

	var slots []model.LectureSlotModel
	if err := q.Order("lecture_slot_day_of_week ASC, lecture_slot_start_minutes ASC").
		Find(&slots).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}

	return helper.JsonOK(c, "Jadwal berhasil diambil", dto.FromLectureSlotModels(slots))
}

/* ===================== CREATE ===================== */
// POST /admin/timetable — tolak 409 kalau bentrok dengan slot lain
func (ctrl *TimetableController) CreateSlot(c *fiber.Ctx) error {
	var req dto.CreateLectureSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	start, err := helper.ParseClock(req.LectureSlotStartTime)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	end, err := helper.ParseClock(req.LectureSlotEndTime)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if end <= start {
		return fiber.NewError(fiber.StatusBadRequest, "Jam selesai harus setelah jam mulai")
	}

	candidate := model.LectureSlotModel{
		LectureSlotClassID:      req.LectureSlotClassID,
		LectureSlotTeacherID:    req.LectureSlotTeacherID,
		LectureSlotSubject:      req.LectureSlotSubject,
		LectureSlotDayOfWeek:    req.LectureSlotDayOfWeek,
		LectureSlotStartMinutes: start,
		LectureSlotEndMinutes:   end,
	}

	// ambil slot sehari yang menyentuh kelas atau guru ini
	var existing []model.LectureSlotModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("lecture_slot_day_of_week = ?", req.LectureSlotDayOfWeek).
		Where("lecture_slot_class_id = ? OR lecture_slot_teacher_id = ?",
			req.LectureSlotClassID, req.LectureSlotTeacherID).
		Find(&existing).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa jadwal")
	}

	if hit := service.FindConflict(candidate, existing); hit != nil {
		msg := fmt.Sprintf("Bentrok dengan %s (%s - %s)",
			hit.LectureSlotSubject,
			helper.FormatClock(hit.LectureSlotStartMinutes),
			helper.FormatClock(hit.LectureSlotEndMinutes))
		return fiber.NewError(fiber.StatusConflict, msg)
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Create(&candidate).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan jadwal")
	}

	return helper.JsonCreated(c, "Slot jadwal berhasil ditambahkan", dto.FromLectureSlotModel(candidate))
}

/* ===================== DELETE ===================== */
// DELETE /admin/timetable/:id
func (ctrl *TimetableController) DeleteSlot(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID slot tidak valid")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Delete(&model.LectureSlotModel{}, "lecture_slot_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus slot")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Slot tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Slot jadwal berhasil dihapus", fiber.Map{"lecture_slot_id": id})
}
