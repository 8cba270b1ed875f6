package model

import (
	"time"

	"github.com/google/uuid"
)

// Rekap harian per (kelas, tanggal), dihitung ulang setiap posting sukses.
// Read-only untuk pelaporan; bukan sumber kebenaran.
type AttendanceDaySummaryModel struct {
	AttendanceDaySummaryID uuid.UUID `gorm:"column:attendance_day_summary_id;type:uuid;default:gen_random_uuid();primaryKey" json:"attendance_day_summary_id"`

	AttendanceDaySummaryClassID uuid.UUID `gorm:"column:attendance_day_summary_class_id;type:uuid;not null;uniqueIndex:uq_attendance_day_summaries_class_date" json:"attendance_day_summary_class_id"`
	AttendanceDaySummaryDate    string    `gorm:"column:attendance_day_summary_date;type:date;not null;uniqueIndex:uq_attendance_day_summaries_class_date" json:"attendance_day_summary_date"`

	AttendanceDaySummaryTotalStudents int `gorm:"column:attendance_day_summary_total_students;not null;default:0" json:"attendance_day_summary_total_students"`
	AttendanceDaySummaryPresentCount  int `gorm:"column:attendance_day_summary_present_count;not null;default:0" json:"attendance_day_summary_present_count"`
	AttendanceDaySummaryLateCount     int `gorm:"column:attendance_day_summary_late_count;not null;default:0" json:"attendance_day_summary_late_count"`
	AttendanceDaySummaryAbsentCount   int `gorm:"column:attendance_day_summary_absent_count;not null;default:0" json:"attendance_day_summary_absent_count"`

	AttendanceDaySummaryPostedAt  time.Time `gorm:"column:attendance_day_summary_posted_at;not null" json:"attendance_day_summary_posted_at"`
	AttendanceDaySummaryCreatedAt time.Time `gorm:"column:attendance_day_summary_created_at;autoCreateTime" json:"attendance_day_summary_created_at"`
	AttendanceDaySummaryUpdatedAt time.Time `gorm:"column:attendance_day_summary_updated_at;autoUpdateTime" json:"attendance_day_summary_updated_at"`
}

func (AttendanceDaySummaryModel) TableName() string { return "attendance_day_summaries" }
