package model

import (
	"time"

	"github.com/google/uuid"
)

// Satu baris absensi final per (siswa, tanggal). Keunikan dijaga oleh
// constraint uq_attendance_records_student_date — jalur posting memakai
// upsert dengan conflict target itu, jadi retry tidak pernah bikin duplikat.
type AttendanceRecordModel struct {
	AttendanceRecordID uuid.UUID `gorm:"column:attendance_record_id;type:uuid;default:gen_random_uuid();primaryKey" json:"attendance_record_id"`

	AttendanceRecordStudentID uuid.UUID `gorm:"column:attendance_record_student_id;type:uuid;not null;uniqueIndex:uq_attendance_records_student_date" json:"attendance_record_student_id"`
	AttendanceRecordClassID   uuid.UUID `gorm:"column:attendance_record_class_id;type:uuid;not null;index" json:"attendance_record_class_id"`
	AttendanceRecordDate      string    `gorm:"column:attendance_record_date;type:date;not null;uniqueIndex:uq_attendance_records_student_date" json:"attendance_record_date"` // YYYY-MM-DD

	AttendanceRecordStatus      string  `gorm:"column:attendance_record_status;type:varchar(10);not null" json:"attendance_record_status"`            // present|late|absent
	AttendanceRecordArrivalTime *string `gorm:"column:attendance_record_arrival_time;type:varchar(5)" json:"attendance_record_arrival_time,omitempty"` // HH:MM, nil saat absent
	AttendanceRecordLateMinutes *int    `gorm:"column:attendance_record_late_minutes" json:"attendance_record_late_minutes,omitempty"`                 // hanya saat late
	AttendanceRecordNote        *string `gorm:"column:attendance_record_note;type:text" json:"attendance_record_note,omitempty"`

	AttendanceRecordMarkedBy uuid.UUID `gorm:"column:attendance_record_marked_by;type:uuid;not null" json:"attendance_record_marked_by"`

	AttendanceRecordCreatedAt time.Time `gorm:"column:attendance_record_created_at;autoCreateTime" json:"attendance_record_created_at"`
	AttendanceRecordUpdatedAt time.Time `gorm:"column:attendance_record_updated_at;autoUpdateTime" json:"attendance_record_updated_at"`
}

func (AttendanceRecordModel) TableName() string { return "attendance_records" }
