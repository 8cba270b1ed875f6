// file: internals/features/school/classes/controller/class_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/classes/dto"
	"schoolku_backend/internals/features/school/classes/model"
	helper "schoolku_backend/internals/helpers"
)

type ClassController struct {
	DB *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

var validate = validator.New()

// GET /admin/classes
func (ctrl *ClassController) GetClasses(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 100)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.ClassModel{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung data kelas")
	}

	var classes []model.ClassModel
	if err := q.Order("class_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&classes).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data kelas")
	}

	return helper.JsonList(c, "Daftar kelas berhasil diambil",
		dto.FromClassModels(classes),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	)
}

// GET /admin/classes/:id
func (ctrl *ClassController) GetClass(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID kelas tidak valid")
	}

	var class model.ClassModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&class, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data kelas")
	}

	return helper.JsonOK(c, "Detail kelas berhasil diambil", dto.FromClassModel(class))
}

// POST /admin/classes
func (ctrl *ClassController) CreateClass(c *fiber.Ctx) error {
	var req dto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if req.ClassStartTime != nil {
		if _, err := helper.ParseClock(*req.ClassStartTime); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
	}

	class := model.ClassModel{
		ClassName:              req.ClassName,
		ClassHomeroomTeacherID: req.ClassHomeroomTeacherID,
		ClassStartTime:         req.ClassStartTime,
		ClassLateCutoffMinutes: req.ClassLateCutoffMinutes,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&class).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan data kelas")
	}

	return helper.JsonCreated(c, "Kelas berhasil ditambahkan", dto.FromClassModel(class))
}

// PATCH /admin/classes/:id
func (ctrl *ClassController) UpdateClass(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID kelas tidak valid")
	}

	var req dto.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if req.ClassStartTime != nil {
		if _, err := helper.ParseClock(*req.ClassStartTime); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
	}

	var class model.ClassModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&class, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data kelas")
	}

	if req.ClassName != nil {
		class.ClassName = *req.ClassName
	}
	if req.ClassHomeroomTeacherID != nil {
		class.ClassHomeroomTeacherID = req.ClassHomeroomTeacherID
	}
	if req.ClassStartTime != nil {
		class.ClassStartTime = req.ClassStartTime
	}
	if req.ClassLateCutoffMinutes != nil {
		class.ClassLateCutoffMinutes = req.ClassLateCutoffMinutes
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&class).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui data kelas")
	}

	return helper.JsonUpdated(c, "Data kelas berhasil diperbarui", dto.FromClassModel(class))
}

// DELETE /admin/classes/:id (soft delete)
func (ctrl *ClassController) DeleteClass(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID kelas tidak valid")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Delete(&model.ClassModel{}, "class_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus data kelas")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Kelas berhasil dihapus", fiber.Map{"class_id": id})
}
