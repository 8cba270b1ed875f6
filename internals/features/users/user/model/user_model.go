package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID       uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FullName string    `gorm:"column:full_name;type:varchar(120);not null" json:"full_name"`
	Email    string    `gorm:"column:email;type:varchar(255);uniqueIndex;not null" json:"email"`

	// bcrypt hash, tidak pernah keluar lewat JSON
	Password string `gorm:"column:password;type:varchar(255);not null" json:"-"`

	Role     string `gorm:"column:role;type:varchar(20);not null;default:'student'" json:"role"`
	IsActive bool   `gorm:"column:is_active;not null;default:true" json:"is_active"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }
