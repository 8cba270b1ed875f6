// file: internals/features/school/attendance/controller/report_controller.go
package controller

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

var recapHeaders = []string{"tanggal", "student_id", "status", "jam_datang", "menit_terlambat", "ditandai_oleh"}

/* ===================== EXPORT XLSX ===================== */
// GET /teacher/attendance/export?class_id=&from=&to=
// Rekap absensi kelas dalam rentang tanggal sebagai file Excel.
func (ctrl *TeacherAttendanceController) ExportRecap(c *fiber.Ctx) error {
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
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat data absensi")
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	for i, h := range recapHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for i, r := range rows {
		arrival := ""
		if r.AttendanceRecordArrivalTime != nil {
			arrival = *r.AttendanceRecordArrivalTime
		}
		late := 0
		if r.AttendanceRecordLateMinutes != nil {
			late = *r.AttendanceRecordLateMinutes
		}
		values := []any{
			r.AttendanceRecordDate,
			r.AttendanceRecordStudentID.String(),
			r.AttendanceRecordStatus,
			arrival,
			late,
			r.AttendanceRecordMarkedBy.String(),
		}
		for j, val := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal menulis file rekap")
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat file rekap")
	}

	filename := fmt.Sprintf("rekap-absensi-%s.xlsx", classID.String()[:8])
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return c.Send(buf.Bytes())
}
