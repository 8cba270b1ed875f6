package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentModel struct {
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`

	// akun login siswa (nullable; siswa kecil sering belum punya akun)
	StudentUserID *uuid.UUID `gorm:"column:student_user_id;type:uuid" json:"student_user_id,omitempty"`

	StudentFullName   string    `gorm:"column:student_full_name;type:varchar(120);not null" json:"student_full_name"`
	StudentRollNumber int       `gorm:"column:student_roll_number;not null" json:"student_roll_number"`
	StudentClassID    uuid.UUID `gorm:"column:student_class_id;type:uuid;not null;index" json:"student_class_id"`

	StudentGuardianName  *string `gorm:"column:student_guardian_name;type:varchar(120)" json:"student_guardian_name,omitempty"`
	StudentGuardianPhone *string `gorm:"column:student_guardian_phone;type:varchar(30)" json:"student_guardian_phone,omitempty"`

	StudentIsActive bool `gorm:"column:student_is_active;not null;default:true" json:"student_is_active"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }
