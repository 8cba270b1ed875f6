package model

import (
	"time"

	"github.com/google/uuid"
)

// Refresh token disimpan sebagai hash SHA-256; token asli hanya ada di klien.
// Rotasi: setiap refresh sukses, baris lama dihapus dan diganti baris baru.
type RefreshTokenModel struct {
	ID     uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`

	TokenHash []byte    `gorm:"column:token_hash;type:bytea;not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time `gorm:"column:expires_at;not null" json:"expires_at"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (RefreshTokenModel) TableName() string { return "refresh_tokens" }
