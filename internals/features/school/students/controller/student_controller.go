// file: internals/features/school/students/controller/student_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/students/dto"
	"schoolku_backend/internals/features/school/students/model"
	helper "schoolku_backend/internals/helpers"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

var validate = validator.New()

/* ===================== LIST ===================== */
// GET /admin/students?class_id=&page=&per_page=
func (ctrl *StudentController) GetStudents(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 100)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.StudentModel{})
	if raw := c.Query("class_id"); raw != "" {
		classID, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "class_id tidak valid")
		}
		q = q.Where("student_class_id = ?", classID)
	}
	if c.Query("active", "true") == "true" {
		q = q.Where("student_is_active = ?", true)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung data siswa")
	}

	var students []model.StudentModel
	if err := q.Order("student_roll_number ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&students).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	return helper.JsonList(c, "Daftar siswa berhasil diambil",
		dto.FromStudentModels(students),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	)
}

/* ===================== DETAIL ===================== */
// GET /admin/students/:id
func (ctrl *StudentController) GetStudent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID siswa tidak valid")
	}

	var student model.StudentModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&student, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	return helper.JsonOK(c, "Detail siswa berhasil diambil", dto.FromStudentModel(student))
}

/* ===================== CREATE ===================== */
// POST /admin/students
func (ctrl *StudentController) CreateStudent(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	student := model.StudentModel{
		StudentUserID:        req.StudentUserID,
		StudentFullName:      req.StudentFullName,
		StudentRollNumber:    req.StudentRollNumber,
		StudentClassID:       req.StudentClassID,
		StudentGuardianName:  req.StudentGuardianName,
		StudentGuardianPhone: req.StudentGuardianPhone,
		StudentIsActive:      true,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&student).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan data siswa")
	}

	return helper.JsonCreated(c, "Siswa berhasil ditambahkan", dto.FromStudentModel(student))
}

/* ===================== UPDATE ===================== */
// PATCH /admin/students/:id
func (ctrl *StudentController) UpdateStudent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID siswa tidak valid")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var student model.StudentModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&student, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	if req.StudentFullName != nil {
		student.StudentFullName = *req.StudentFullName
	}
	if req.StudentRollNumber != nil {
		student.StudentRollNumber = *req.StudentRollNumber
	}
	if req.StudentClassID != nil {
		student.StudentClassID = *req.StudentClassID
	}
	if req.StudentUserID != nil {
		student.StudentUserID = req.StudentUserID
	}
	if req.StudentGuardianName != nil {
		student.StudentGuardianName = req.StudentGuardianName
	}
	if req.StudentGuardianPhone != nil {
		student.StudentGuardianPhone = req.StudentGuardianPhone
	}
	if req.StudentIsActive != nil {
		student.StudentIsActive = *req.StudentIsActive
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&student).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui data siswa")
	}

	return helper.JsonUpdated(c, "Data siswa berhasil diperbarui", dto.FromStudentModel(student))
}

/* ===================== DELETE ===================== */
// DELETE /admin/students/:id (soft delete)
func (ctrl *StudentController) DeleteStudent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID siswa tidak valid")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Delete(&model.StudentModel{}, "student_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus data siswa")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Siswa berhasil dihapus", fiber.Map{"student_id": id})
}
