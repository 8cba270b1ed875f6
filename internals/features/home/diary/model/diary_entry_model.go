package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Catatan harian guru untuk satu kelas (PR, pengumuman, materi hari ini).
type DiaryEntryModel struct {
	DiaryEntryID uuid.UUID `gorm:"column:diary_entry_id;type:uuid;default:gen_random_uuid();primaryKey" json:"diary_entry_id"`

	DiaryEntryClassID   uuid.UUID `gorm:"column:diary_entry_class_id;type:uuid;not null;index" json:"diary_entry_class_id"`
	DiaryEntryTeacherID uuid.UUID `gorm:"column:diary_entry_teacher_id;type:uuid;not null" json:"diary_entry_teacher_id"`

	DiaryEntryDate    string `gorm:"column:diary_entry_date;type:date;not null;index" json:"diary_entry_date"` // YYYY-MM-DD
	DiaryEntryTitle   string `gorm:"column:diary_entry_title;type:varchar(150);not null" json:"diary_entry_title"`
	DiaryEntryContent string `gorm:"column:diary_entry_content;type:text;not null" json:"diary_entry_content"`

	DiaryEntryCreatedAt time.Time      `gorm:"column:diary_entry_created_at;autoCreateTime" json:"diary_entry_created_at"`
	DiaryEntryUpdatedAt time.Time      `gorm:"column:diary_entry_updated_at;autoUpdateTime" json:"diary_entry_updated_at"`
	DiaryEntryDeletedAt gorm.DeletedAt `gorm:"column:diary_entry_deleted_at;index" json:"diary_entry_deleted_at,omitempty"`
}

func (DiaryEntryModel) TableName() string { return "diary_entries" }
