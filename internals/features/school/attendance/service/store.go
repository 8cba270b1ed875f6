package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schoolku_backend/internals/features/school/attendance/model"
)

// RecordStore = batas ke penyimpanan permanen. Service tidak pegang *gorm.DB
// langsung supaya logika rekonsiliasi/posting bisa dites dengan store in-memory.
type RecordStore interface {
	ListByClassAndRange(ctx context.Context, classID uuid.UUID, from, to string) ([]model.AttendanceRecordModel, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID, from, to string) ([]model.AttendanceRecordModel, error)
	Exists(ctx context.Context, studentID uuid.UUID, date string) (bool, error)
	UpsertBatch(ctx context.Context, rows []model.AttendanceRecordModel) error
	SaveDaySummary(ctx context.Context, s *model.AttendanceDaySummaryModel) error
}

// ================== GORM IMPLEMENTATION ==================

type GormRecordStore struct {
	DB *gorm.DB
}

func NewGormRecordStore(db *gorm.DB) *GormRecordStore { return &GormRecordStore{DB: db} }

func (g *GormRecordStore) ListByClassAndRange(ctx context.Context, classID uuid.UUID, from, to string) ([]model.AttendanceRecordModel, error) {
	q := g.DB.WithContext(ctx).
		Where("attendance_record_class_id = ?", classID)
	if from != "" {
		q = q.Where("attendance_record_date >= ?", from)
	}
	if to != "" {
		q = q.Where("attendance_record_date <= ?", to)
	}
	var rows []model.AttendanceRecordModel
	if err := q.Order("attendance_record_date ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (g *GormRecordStore) ListByStudent(ctx context.Context, studentID uuid.UUID, from, to string) ([]model.AttendanceRecordModel, error) {
	q := g.DB.WithContext(ctx).
		Where("attendance_record_student_id = ?", studentID)
	if from != "" {
		q = q.Where("attendance_record_date >= ?", from)
	}
	if to != "" {
		q = q.Where("attendance_record_date <= ?", to)
	}
	var rows []model.AttendanceRecordModel
	if err := q.Order("attendance_record_date DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (g *GormRecordStore) Exists(ctx context.Context, studentID uuid.UUID, date string) (bool, error) {
	var n int64
	err := g.DB.WithContext(ctx).
		Model(&model.AttendanceRecordModel{}).
		Where("attendance_record_student_id = ? AND attendance_record_date = ?", studentID, date).
		Count(&n).Error
	return n > 0, err
}

// UpsertBatch menulis semua baris sekali jalan. Conflict target (student_id, date):
// insert kalau belum ada, update kalau sudah — retry posting idempoten, tidak
// pernah menghasilkan baris ganda untuk siswa+tanggal yang sama.
func (g *GormRecordStore) UpsertBatch(ctx context.Context, rows []model.AttendanceRecordModel) error {
	if len(rows) == 0 {
		return nil
	}
	err := g.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "attendance_record_student_id"},
				{Name: "attendance_record_date"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"attendance_record_class_id",
				"attendance_record_status",
				"attendance_record_arrival_time",
				"attendance_record_late_minutes",
				"attendance_record_note",
				"attendance_record_marked_by",
				"attendance_record_updated_at",
			}),
		}).
		Create(&rows).Error
	if err != nil {
		// unique_violation di luar conflict target = data referensi bermasalah
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			log.Printf("[WARN] upsert absensi kena unique violation: %s", pqErr.Constraint)
		}
		return err
	}
	return nil
}

func (g *GormRecordStore) SaveDaySummary(ctx context.Context, s *model.AttendanceDaySummaryModel) error {
	return g.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "attendance_day_summary_class_id"},
				{Name: "attendance_day_summary_date"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"attendance_day_summary_total_students",
				"attendance_day_summary_present_count",
				"attendance_day_summary_late_count",
				"attendance_day_summary_absent_count",
				"attendance_day_summary_posted_at",
				"attendance_day_summary_updated_at",
			}),
		}).
		Create(s).Error
}
