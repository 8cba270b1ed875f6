// file: internals/features/school/attendance/dto/attendance_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/attendance/model"
	svc "schoolku_backend/internals/features/school/attendance/service"
	helper "schoolku_backend/internals/helpers"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

// Tandai satu siswa (masuk staging, belum permanen)
type MarkAttendanceRequest struct {
	AttendanceClassID   uuid.UUID `json:"attendance_class_id" validate:"required"`
	AttendanceStudentID uuid.UUID `json:"attendance_student_id" validate:"required"`

	// present|late|absent — late eksplisit jarang dipakai; classifier yang menentukan
	AttendanceStatus string `json:"attendance_status" validate:"required,oneof=present late absent"`

	// HH:MM, opsional; kalau kosong dipakai jam saat menandai. Divalidasi di controller
	// via helper.ParseClock (bukan di classifier).
	AttendanceArrivalTime *string `json:"attendance_arrival_time" validate:"omitempty,len=5"`

	// Tanggal sesi; default hari ini
	AttendanceDate *string `json:"attendance_date" validate:"omitempty,datetime=2006-01-02"`

	AttendanceNote *string `json:"attendance_note" validate:"omitempty,max=300"`
}

// Posting seluruh staging satu sesi
type PostAttendanceRequest struct {
	AttendanceClassID uuid.UUID `json:"attendance_class_id" validate:"required"`
	AttendanceDate    *string   `json:"attendance_date" validate:"omitempty,datetime=2006-01-02"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type AttendanceRecordResponse struct {
	AttendanceRecordID          uuid.UUID `json:"attendance_record_id"`
	AttendanceRecordStudentID   uuid.UUID `json:"attendance_record_student_id"`
	AttendanceRecordClassID     uuid.UUID `json:"attendance_record_class_id"`
	AttendanceRecordDate        string    `json:"attendance_record_date"`
	AttendanceRecordStatus      string    `json:"attendance_record_status"`
	AttendanceRecordArrivalTime *string   `json:"attendance_record_arrival_time,omitempty"`
	AttendanceRecordLateMinutes *int      `json:"attendance_record_late_minutes,omitempty"`
	AttendanceRecordNote        *string   `json:"attendance_record_note,omitempty"`
	AttendanceRecordMarkedBy    uuid.UUID `json:"attendance_record_marked_by"`
	AttendanceRecordCreatedAt   time.Time `json:"attendance_record_created_at"`
	AttendanceRecordUpdatedAt   time.Time `json:"attendance_record_updated_at"`
}

func FromAttendanceRecordModel(m model.AttendanceRecordModel) AttendanceRecordResponse {
	return AttendanceRecordResponse{
		AttendanceRecordID:          m.AttendanceRecordID,
		AttendanceRecordStudentID:   m.AttendanceRecordStudentID,
		AttendanceRecordClassID:     m.AttendanceRecordClassID,
		AttendanceRecordDate:        m.AttendanceRecordDate,
		AttendanceRecordStatus:      m.AttendanceRecordStatus,
		AttendanceRecordArrivalTime: m.AttendanceRecordArrivalTime,
		AttendanceRecordLateMinutes: m.AttendanceRecordLateMinutes,
		AttendanceRecordNote:        m.AttendanceRecordNote,
		AttendanceRecordMarkedBy:    m.AttendanceRecordMarkedBy,
		AttendanceRecordCreatedAt:   m.AttendanceRecordCreatedAt,
		AttendanceRecordUpdatedAt:   m.AttendanceRecordUpdatedAt,
	}
}

func FromAttendanceRecordModels(ms []model.AttendanceRecordModel) []AttendanceRecordResponse {
	out := make([]AttendanceRecordResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromAttendanceRecordModel(m))
	}
	return out
}

type StagedEntryResponse struct {
	StudentID   uuid.UUID `json:"student_id"`
	Status      string    `json:"status"`
	ArrivalTime *string   `json:"arrival_time,omitempty"`
	LateMinutes int       `json:"late_minutes"`
	Note        *string   `json:"note,omitempty"`
	MarkedAt    time.Time `json:"marked_at"`
}

func FromStagedEntry(e svc.StagedEntry) StagedEntryResponse {
	var arrival *string
	if e.ArrivalMinutes != nil {
		v := helper.FormatClock(*e.ArrivalMinutes)
		arrival = &v
	}
	return StagedEntryResponse{
		StudentID:   e.StudentID,
		Status:      e.Status,
		ArrivalTime: arrival,
		LateMinutes: e.LateMinutes,
		Note:        e.Note,
		MarkedAt:    e.MarkedAt,
	}
}

// Satu baris papan absensi: siswa + keadaannya hari itu.
// state persisted = aksi tandai dimatikan di klien (hanya jalur edit eksplisit).
type BoardItemResponse struct {
	StudentID       uuid.UUID                 `json:"student_id"`
	StudentName     string                    `json:"student_name"`
	StudentRollNo   int                       `json:"student_roll_no"`
	State           string                    `json:"state"`  // unmarked|staged|persisted
	Source          string                    `json:"source"` // none|temporary|database
	PersistedRecord *AttendanceRecordResponse `json:"persisted_record,omitempty"`
	StagedEntry     *StagedEntryResponse      `json:"staged_entry,omitempty"`
}

type BoardResponse struct {
	ClassID     uuid.UUID           `json:"class_id"`
	Date        string              `json:"date"`
	StagedCount int                 `json:"staged_count"` // tombol Post disembunyikan kalau 0
	Items       []BoardItemResponse `json:"items"`
}
