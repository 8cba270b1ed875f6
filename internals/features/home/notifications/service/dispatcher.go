// file: internals/features/home/notifications/service/dispatcher.go
package service

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	notifmodel "schoolku_backend/internals/features/home/notifications/model"
	studentmodel "schoolku_backend/internals/features/school/students/model"
)

// Pesan push yang dikirim ke penyedia eksternal (FCM dan kawan-kawan).
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// PushDispatcher mengirim push ke sekumpulan user. Implementasi nyata
// menempel ke provider; LogDispatcher dipakai saat provider belum dikonfigurasi.
type PushDispatcher interface {
	Dispatch(ctx context.Context, userIDs []uuid.UUID, msg PushMessage) error
}

// LogDispatcher: fallback tanpa provider, cuma catat ke log server.
type LogDispatcher struct{}

func (LogDispatcher) Dispatch(_ context.Context, userIDs []uuid.UUID, msg PushMessage) error {
	log.Printf("[PUSH] %d penerima | %s: %s", len(userIDs), msg.Title, msg.Body)
	return nil
}

type NotificationService struct {
	DB         *gorm.DB
	Dispatcher PushDispatcher
}

func NewNotificationService(db *gorm.DB, dispatcher PushDispatcher) *NotificationService {
	if dispatcher == nil {
		dispatcher = LogDispatcher{}
	}
	return &NotificationService{DB: db, Dispatcher: dispatcher}
}

// NotifyClass menyimpan notifikasi, fan-out ke akun wali/siswa kelas itu,
// lalu kirim push di background. Gagal push tidak membatalkan penyimpanan.
func (s *NotificationService) NotifyClass(
	ctx context.Context,
	classID uuid.UUID,
	createdBy uuid.UUID,
	title, body string,
	tags []string,
	data datatypes.JSON,
) error {
	notif := notifmodel.NotificationModel{
		NotificationTitle:     title,
		NotificationBody:      body,
		NotificationTags:      pq.StringArray(tags),
		NotificationData:      data,
		NotificationClassID:   &classID,
		NotificationCreatedBy: createdBy,
	}
	if err := s.DB.WithContext(ctx).Create(&notif).Error; err != nil {
		return err
	}

	// siswa aktif kelas ini yang punya akun
	var students []studentmodel.StudentModel
	if err := s.DB.WithContext(ctx).
		Where("student_class_id = ? AND student_is_active = ? AND student_user_id IS NOT NULL", classID, true).
		Find(&students).Error; err != nil {
		return err
	}

	userIDs := make([]uuid.UUID, 0, len(students))
	rows := make([]notifmodel.UserNotificationModel, 0, len(students))
	for _, st := range students {
		userIDs = append(userIDs, *st.StudentUserID)
		rows = append(rows, notifmodel.UserNotificationModel{
			UserNotificationUserID:         *st.StudentUserID,
			UserNotificationNotificationID: notif.NotificationID,
		})
	}
	if len(rows) > 0 {
		if err := s.DB.WithContext(ctx).Create(&rows).Error; err != nil {
			return err
		}
	}

	bg := context.WithoutCancel(ctx)
	go func(ids []uuid.UUID) {
		msg := PushMessage{Title: title, Body: body}
		if err := s.Dispatcher.Dispatch(bg, ids, msg); err != nil {
			log.Printf("[WARN] dispatch push gagal: %v", err)
		}
	}(userIDs)

	return nil
}

// NotifyUser: notifikasi langsung ke satu user.
func (s *NotificationService) NotifyUser(
	ctx context.Context,
	userID uuid.UUID,
	createdBy uuid.UUID,
	title, body string,
	data datatypes.JSON,
) error {
	notif := notifmodel.NotificationModel{
		NotificationTitle:     title,
		NotificationBody:      body,
		NotificationData:      data,
		NotificationCreatedBy: createdBy,
	}
	if err := s.DB.WithContext(ctx).Create(&notif).Error; err != nil {
		return err
	}
	row := notifmodel.UserNotificationModel{
		UserNotificationUserID:         userID,
		UserNotificationNotificationID: notif.NotificationID,
	}
	if err := s.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}

	bg := context.WithoutCancel(ctx)
	go func() {
		msg := PushMessage{Title: title, Body: body}
		if err := s.Dispatcher.Dispatch(bg, []uuid.UUID{userID}, msg); err != nil {
			log.Printf("[WARN] dispatch push gagal: %v", err)
		}
	}()
	return nil
}
