// file: internals/features/school/attendance/controller/attendance_controller.go
package controller

import (
	"errors"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/attendance/dto"
	"schoolku_backend/internals/features/school/attendance/model"
	svc "schoolku_backend/internals/features/school/attendance/service"
	studentModel "schoolku_backend/internals/features/school/students/model"
	helper "schoolku_backend/internals/helpers"
)

type TeacherAttendanceController struct {
	DB      *gorm.DB
	Service *svc.AttendanceService
}

func NewTeacherAttendanceController(db *gorm.DB, service *svc.AttendanceService) *TeacherAttendanceController {
	return &TeacherAttendanceController{DB: db, Service: service}
}

func (ctrl *TeacherAttendanceController) dateOrToday(raw *string) (string, error) {
	if raw == nil || *raw == "" {
		return helper.DateOf(time.Now()), nil
	}
	return helper.ParseDate(*raw)
}

/* ===================== BOARD ===================== */
// GET /teacher/attendance/board?class_id=&date=
// Papan absensi: semua siswa kelas + keadaan masing-masing
// (persisted terkunci, staged masih bisa diubah, unmarked belum apa-apa).
func (ctrl *TeacherAttendanceController) GetBoard(c *fiber.Ctx) error {
	teacherID, err := helper.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	classID, err := uuid.Parse(c.Query("class_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "class_id tidak valid")
	}
	date := helper.DateOf(time.Now())
	if q := c.Query("date"); q != "" {
		if date, err = helper.ParseDate(q); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
	}

	// siswa aktif kelas ini
	var students []studentModel.StudentModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("student_class_id = ? AND student_is_active = TRUE", classID).
		Order("student_roll_number ASC").
		Find(&students).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat daftar siswa")
	}

	persisted, err := ctrl.Service.HistoryByClass(c.UserContext(), classID, date, date)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat data absensi")
	}
	persistedBy := make(map[uuid.UUID]model.AttendanceRecordModel, len(persisted))
	for _, r := range persisted {
		persistedBy[r.AttendanceRecordStudentID] = r
	}

	staged := ctrl.Service.Staged(teacherID, classID, date)

	items := make([]dto.BoardItemResponse, 0, len(students))
	for _, st := range students {
		item := dto.BoardItemResponse{
			StudentID:     st.StudentID,
			StudentName:   st.StudentFullName,
			StudentRollNo: st.StudentRollNumber,
		}

		var pRec *model.AttendanceRecordModel
		if r, ok := persistedBy[st.StudentID]; ok {
			pRec = &r
			resp := dto.FromAttendanceRecordModel(r)
			item.PersistedRecord = &resp
		}
		var sEntry *svc.StagedEntry
		if e, ok := staged[st.StudentID]; ok {
			sEntry = &e
			// record permanen menang; staging yatim tetap dikirim biar klien bisa
			// menampilkan indikator kalau mau
			resp := dto.FromStagedEntry(e)
			item.StagedEntry = &resp
		}
		item.State, item.Source = svc.ResolveDisplayState(pRec, sEntry)
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].StudentRollNo < items[j].StudentRollNo })

	return helper.JsonOK(c, "Papan absensi", dto.BoardResponse{
		ClassID:     classID,
		Date:        date,
		StagedCount: ctrl.Service.StagedCount(teacherID, classID, date),
		Items:       items,
	})
}

/* ===================== MARK ===================== */
// POST /teacher/attendance/mark
func (ctrl *TeacherAttendanceController) MarkAttendance(c *fiber.Ctx) error {
	teacherID, err := helper.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}

	// Validasi dasar (type/enum/range)
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	// Jam datang divalidasi DI SINI (batas input), bukan di classifier
	var arrivalMinutes *int
	if req.AttendanceArrivalTime != nil && *req.AttendanceArrivalTime != "" {
		m, err := helper.ParseClock(*req.AttendanceArrivalTime)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		arrivalMinutes = &m
	}

	date, err := ctrl.dateOrToday(req.AttendanceDate)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	entry, err := ctrl.Service.Mark(
		c.UserContext(),
		teacherID, req.AttendanceClassID, date,
		req.AttendanceStudentID, req.AttendanceStatus,
		arrivalMinutes, req.AttendanceNote,
	)
	switch {
	case errors.Is(err, svc.ErrAlreadyRecorded):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, svc.ErrInvalidStatus):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case err != nil:
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menandai kehadiran")
	}

	return helper.JsonOK(c, "Kehadiran ditandai (belum diposting)", fiber.Map{
		"entry":        dto.FromStagedEntry(entry),
		"staged_count": ctrl.Service.StagedCount(teacherID, req.AttendanceClassID, date),
	})
}

/* ===================== UNMARK ===================== */
// DELETE /teacher/attendance/staged/:student_id?class_id=&date=
func (ctrl *TeacherAttendanceController) UnmarkAttendance(c *fiber.Ctx) error {
	teacherID, err := helper.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "student_id tidak valid")
	}
	classID, err := uuid.Parse(c.Query("class_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "class_id tidak valid")
	}
	date := helper.DateOf(time.Now())
	if q := c.Query("date"); q != "" {
		if date, err = helper.ParseDate(q); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
	}

	ctrl.Service.Unmark(teacherID, classID, date, studentID)
	return helper.JsonDeleted(c, "Tanda kehadiran dihapus dari staging", fiber.Map{
		"staged_count": ctrl.Service.StagedCount(teacherID, classID, date),
	})
}

/* ===================== POST ===================== */
// POST /teacher/attendance/post
func (ctrl *TeacherAttendanceController) PostAttendance(c *fiber.Ctx) error {
	teacherID, err := helper.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.PostAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	date, err := ctrl.dateOrToday(req.AttendanceDate)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	records, err := ctrl.Service.Post(c.UserContext(), teacherID, req.AttendanceClassID, date)
	switch {
	case errors.Is(err, svc.ErrNoStaged):
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, svc.ErrPostInFlight):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case err != nil:
		// staging TIDAK dihapus; guru bisa coba lagi
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan absensi, data sementara masih aman")
	}

	return helper.JsonCreated(c, "Absensi berhasil diposting", dto.FromAttendanceRecordModels(records))
}

/* ===================== HISTORY / STATS ===================== */

// GET /teacher/attendance/history?class_id=&from=&to=
func (ctrl *TeacherAttendanceController) GetClassHistory(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Query("class_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "class_id tidak valid")
	}
	from, to, err := parseRange(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	rows, err := ctrl.Service.HistoryByClass(c.UserContext(), classID, from, to)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat riwayat absensi")
	}
	return helper.JsonOK(c, "Riwayat absensi kelas", dto.FromAttendanceRecordModels(rows))
}

// GET /attendance/students/:student_id/history?from=&to=
func (ctrl *TeacherAttendanceController) GetStudentHistory(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "student_id tidak valid")
	}
	from, to, err := parseRange(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	rows, err := ctrl.Service.HistoryByStudent(c.UserContext(), studentID, from, to)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat riwayat absensi")
	}
	return helper.JsonOK(c, "Riwayat absensi siswa", dto.FromAttendanceRecordModels(rows))
}

// GET /attendance/students/:student_id/stats?from=&to=
func (ctrl *TeacherAttendanceController) GetStudentStats(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "student_id tidak valid")
	}
	from, to, err := parseRange(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	stats, err := ctrl.Service.Stats(c.UserContext(), studentID, from, to)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung statistik")
	}
	return helper.JsonOK(c, "Statistik kehadiran", stats)
}

func parseRange(c *fiber.Ctx) (from, to string, err error) {
	if q := c.Query("from"); q != "" {
		if from, err = helper.ParseDate(q); err != nil {
			return "", "", err
		}
	}
	if q := c.Query("to"); q != "" {
		if to, err = helper.ParseDate(q); err != nil {
			return "", "", err
		}
	}
	return from, to, nil
}
