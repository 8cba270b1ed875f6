package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Notifikasi induk (sekali tulis). Penerima dipecah ke user_notifications.
type NotificationModel struct {
	NotificationID uuid.UUID `gorm:"column:notification_id;type:uuid;default:gen_random_uuid();primaryKey" json:"notification_id"`

	NotificationTitle string `gorm:"column:notification_title;type:varchar(150);not null" json:"notification_title"`
	NotificationBody  string `gorm:"column:notification_body;type:text;not null" json:"notification_body"`

	NotificationTags pq.StringArray `gorm:"column:notification_tags;type:text[]" json:"notification_tags,omitempty"`
	NotificationData datatypes.JSON `gorm:"column:notification_data;type:jsonb" json:"notification_data,omitempty"`

	// kelas tujuan (nullable untuk broadcast per-user)
	NotificationClassID *uuid.UUID `gorm:"column:notification_class_id;type:uuid;index" json:"notification_class_id,omitempty"`

	NotificationCreatedBy uuid.UUID `gorm:"column:notification_created_by;type:uuid;not null" json:"notification_created_by"`
	NotificationCreatedAt time.Time `gorm:"column:notification_created_at;autoCreateTime" json:"notification_created_at"`
}

func (NotificationModel) TableName() string { return "notifications" }

// Satu baris per penerima; status baca per user.
type UserNotificationModel struct {
	UserNotificationID uuid.UUID `gorm:"column:user_notification_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_notification_id"`

	UserNotificationUserID         uuid.UUID `gorm:"column:user_notification_user_id;type:uuid;not null;index" json:"user_notification_user_id"`
	UserNotificationNotificationID uuid.UUID `gorm:"column:user_notification_notification_id;type:uuid;not null;index" json:"user_notification_notification_id"`

	UserNotificationIsRead bool       `gorm:"column:user_notification_is_read;not null;default:false" json:"user_notification_is_read"`
	UserNotificationReadAt *time.Time `gorm:"column:user_notification_read_at" json:"user_notification_read_at,omitempty"`

	UserNotificationCreatedAt time.Time `gorm:"column:user_notification_created_at;autoCreateTime" json:"user_notification_created_at"`

	Notification *NotificationModel `gorm:"foreignKey:UserNotificationNotificationID;references:NotificationID" json:"notification,omitempty"`
}

func (UserNotificationModel) TableName() string { return "user_notifications" }
