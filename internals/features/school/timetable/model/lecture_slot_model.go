package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Satu slot jadwal pelajaran. Menit sejak tengah malam supaya
// perbandingan overlap cukup pakai integer.
type LectureSlotModel struct {
	LectureSlotID uuid.UUID `gorm:"column:lecture_slot_id;type:uuid;default:gen_random_uuid();primaryKey" json:"lecture_slot_id"`

	LectureSlotClassID   uuid.UUID `gorm:"column:lecture_slot_class_id;type:uuid;not null;index" json:"lecture_slot_class_id"`
	LectureSlotTeacherID uuid.UUID `gorm:"column:lecture_slot_teacher_id;type:uuid;not null;index" json:"lecture_slot_teacher_id"`
	LectureSlotSubject   string    `gorm:"column:lecture_slot_subject;type:varchar(80);not null" json:"lecture_slot_subject"`

	LectureSlotDayOfWeek    int `gorm:"column:lecture_slot_day_of_week;not null" json:"lecture_slot_day_of_week"` // 1=Senin .. 7=Minggu
	LectureSlotStartMinutes int `gorm:"column:lecture_slot_start_minutes;not null" json:"lecture_slot_start_minutes"`
	LectureSlotEndMinutes   int `gorm:"column:lecture_slot_end_minutes;not null" json:"lecture_slot_end_minutes"`

	LectureSlotCreatedAt time.Time      `gorm:"column:lecture_slot_created_at;autoCreateTime" json:"lecture_slot_created_at"`
	LectureSlotUpdatedAt time.Time      `gorm:"column:lecture_slot_updated_at;autoUpdateTime" json:"lecture_slot_updated_at"`
	LectureSlotDeletedAt gorm.DeletedAt `gorm:"column:lecture_slot_deleted_at;index" json:"lecture_slot_deleted_at,omitempty"`
}

func (LectureSlotModel) TableName() string { return "lecture_slots" }
