package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassModel struct {
	ClassID   uuid.UUID `gorm:"column:class_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_id"`
	ClassName string    `gorm:"column:class_name;type:varchar(80);not null" json:"class_name"`

	ClassHomeroomTeacherID *uuid.UUID `gorm:"column:class_homeroom_teacher_id;type:uuid" json:"class_homeroom_teacher_id,omitempty"`

	// Override jadwal absensi per kelas (nullable → pakai default global 16:00/15)
	ClassStartTime         *string `gorm:"column:class_start_time;type:varchar(5)" json:"class_start_time,omitempty"` // HH:MM
	ClassLateCutoffMinutes *int    `gorm:"column:class_late_cutoff_minutes" json:"class_late_cutoff_minutes,omitempty"`

	ClassCreatedAt time.Time      `gorm:"column:class_created_at;autoCreateTime" json:"class_created_at"`
	ClassUpdatedAt time.Time      `gorm:"column:class_updated_at;autoUpdateTime" json:"class_updated_at"`
	ClassDeletedAt gorm.DeletedAt `gorm:"column:class_deleted_at;index" json:"class_deleted_at,omitempty"`
}

func (ClassModel) TableName() string { return "classes" }
