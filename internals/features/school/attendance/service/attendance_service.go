package service

import (
	"context"
	"errors"
	"log"
	"math"
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/attendance/model"
	helper "schoolku_backend/internals/helpers"
)

var (
	ErrNoStaged        = errors.New("tidak ada tanda kehadiran untuk diposting")
	ErrPostInFlight    = errors.New("posting sedang berjalan untuk sesi ini")
	ErrAlreadyRecorded = errors.New("absensi siswa sudah tercatat untuk tanggal ini")
	ErrInvalidStatus   = errors.New("status kehadiran tidak dikenal")
)

// Sumber data yang dipakai untuk render satu siswa di papan absensi.
const (
	SourceDatabase  = "database"  // sudah permanen
	SourceTemporary = "temporary" // masih staging
	SourceNone      = "none"
)

// Keadaan satu siswa pada (kelas, tanggal).
const (
	StateUnmarked  = "unmarked"
	StateStaged    = "staged"
	StatePersisted = "persisted"
)

// ResolveDisplayState menentukan keadaan + sumber tampilan per siswa.
// Baris permanen selalu menang: kalau ada record DB dan sisa staging
// (balapan dengan sesi lain), staging jadi yatim dan tidak akan diposting —
// kondisi tampilan saja, bukan error.
func ResolveDisplayState(persisted *model.AttendanceRecordModel, staged *StagedEntry) (state, source string) {
	switch {
	case persisted != nil:
		return StatePersisted, SourceDatabase
	case staged != nil:
		return StateStaged, SourceTemporary
	default:
		return StateUnmarked, SourceNone
	}
}

// PostHook dipanggil (fire-and-forget) setelah posting sukses.
// Dipakai untuk kirim notifikasi tanpa menyentuh logika posting.
type PostHook func(ctx context.Context, classID uuid.UUID, date string, summary model.AttendanceDaySummaryModel)

// ScheduleResolver opsional: jadwal per kelas (override jam mulai/toleransi).
type ScheduleResolver func(ctx context.Context, classID uuid.UUID) Schedule

type AttendanceService struct {
	Store    RecordStore
	Hub      *StagingHub
	Settings ClassifierSettings

	// opsional, di-set saat wiring
	ResolveSchedule ScheduleResolver
	OnPosted        PostHook
}

func NewAttendanceService(store RecordStore, hub *StagingHub, settings ClassifierSettings) *AttendanceService {
	return &AttendanceService{Store: store, Hub: hub, Settings: settings}
}

func (s *AttendanceService) settingsFor(ctx context.Context, classID uuid.UUID) ClassifierSettings {
	set := s.Settings
	if s.ResolveSchedule != nil {
		set.Schedule = s.ResolveSchedule(ctx, classID)
	}
	return set
}

func (s *AttendanceService) now() time.Time {
	if s.Settings.Now != nil {
		return s.Settings.Now()
	}
	return time.Now()
}

// ================== MARK / UNMARK ==================

// Mark menjalankan classifier lalu menulis/overwrite entry staging siswa.
// Siswa yang sudah punya record permanen untuk tanggal itu terkunci
// (transisi Persisted satu arah) → ErrAlreadyRecorded.
func (s *AttendanceService) Mark(
	ctx context.Context,
	teacherID, classID uuid.UUID,
	date string,
	studentID uuid.UUID,
	status string,
	arrivalMinutes *int,
	note *string,
) (StagedEntry, error) {
	if !ValidStatus(status) {
		return StagedEntry{}, ErrInvalidStatus
	}

	locked, err := s.Store.Exists(ctx, studentID, date)
	if err != nil {
		return StagedEntry{}, err
	}
	if locked {
		return StagedEntry{}, ErrAlreadyRecorded
	}

	cls := Classify(status, arrivalMinutes, s.settingsFor(ctx, classID))
	entry := StagedEntry{
		StudentID:      studentID,
		Status:         cls.Status,
		ArrivalMinutes: cls.ArrivalMinutes,
		LateMinutes:    cls.LateMinutes,
		Note:           note,
		MarkedAt:       s.now(),
	}
	s.Hub.Session(teacherID, classID, date).Put(entry)
	return entry, nil
}

func (s *AttendanceService) Unmark(teacherID, classID uuid.UUID, date string, studentID uuid.UUID) {
	s.Hub.Session(teacherID, classID, date).Remove(studentID)
}

func (s *AttendanceService) Staged(teacherID, classID uuid.UUID, date string) map[uuid.UUID]StagedEntry {
	return s.Hub.Session(teacherID, classID, date).Snapshot()
}

func (s *AttendanceService) StagedCount(teacherID, classID uuid.UUID, date string) int {
	return s.Hub.Session(teacherID, classID, date).Count()
}

// ================== POST ==================

// Post mem-flush seluruh staging sesi ke penyimpanan permanen dalam satu
// upsert batch, lalu (hanya jika sukses) mengosongkan staging, menghitung
// ulang rekap harian, dan mengembalikan baris kanonik hasil re-fetch.
// Kalau store gagal, staging TIDAK disentuh supaya guru bisa retry.
func (s *AttendanceService) Post(ctx context.Context, teacherID, classID uuid.UUID, date string) ([]model.AttendanceRecordModel, error) {
	staging := s.Hub.Session(teacherID, classID, date)

	if !staging.BeginPost() {
		return nil, ErrPostInFlight
	}
	defer staging.EndPost()

	snap := staging.Snapshot()
	if len(snap) == 0 {
		return nil, ErrNoStaged
	}

	rows := make([]model.AttendanceRecordModel, 0, len(snap))
	for _, e := range snap {
		var arrival *string
		if e.ArrivalMinutes != nil {
			v := helper.FormatClock(*e.ArrivalMinutes)
			arrival = &v
		}
		var lateMin *int
		if e.Status == StatusLate {
			v := e.LateMinutes
			lateMin = &v
		}
		rows = append(rows, model.AttendanceRecordModel{
			AttendanceRecordStudentID:   e.StudentID,
			AttendanceRecordClassID:     classID,
			AttendanceRecordDate:        date,
			AttendanceRecordStatus:      e.Status,
			AttendanceRecordArrivalTime: arrival,
			AttendanceRecordLateMinutes: lateMin,
			AttendanceRecordNote:        e.Note,
			AttendanceRecordMarkedBy:    teacherID,
		})
	}

	if err := s.Store.UpsertBatch(ctx, rows); err != nil {
		return nil, err
	}

	// Sukses → staging kosong, ambil ulang data kanonik.
	staging.Clear()

	canonical, err := s.Store.ListByClassAndRange(ctx, classID, date, date)
	if err != nil {
		// posting sudah sukses; re-fetch gagal bukan alasan batal
		log.Printf("[WARN] re-fetch absensi %s gagal: %v", date, err)
		canonical = rows
	}

	summary := s.buildSummary(classID, date, canonical)
	if err := s.Store.SaveDaySummary(ctx, &summary); err != nil {
		log.Printf("[WARN] simpan rekap harian %s gagal: %v", date, err)
	}

	if s.OnPosted != nil {
		go s.OnPosted(context.WithoutCancel(ctx), classID, date, summary)
	}

	return canonical, nil
}

func (s *AttendanceService) buildSummary(classID uuid.UUID, date string, rows []model.AttendanceRecordModel) model.AttendanceDaySummaryModel {
	sum := model.AttendanceDaySummaryModel{
		AttendanceDaySummaryClassID:       classID,
		AttendanceDaySummaryDate:          date,
		AttendanceDaySummaryTotalStudents: len(rows),
		AttendanceDaySummaryPostedAt:      s.now(),
	}
	for _, r := range rows {
		switch r.AttendanceRecordStatus {
		case StatusPresent:
			sum.AttendanceDaySummaryPresentCount++
		case StatusLate:
			sum.AttendanceDaySummaryLateCount++
		case StatusAbsent:
			sum.AttendanceDaySummaryAbsentCount++
		}
	}
	return sum
}

// ================== READ PATHS ==================

func (s *AttendanceService) HistoryByClass(ctx context.Context, classID uuid.UUID, from, to string) ([]model.AttendanceRecordModel, error) {
	return s.Store.ListByClassAndRange(ctx, classID, from, to)
}

func (s *AttendanceService) HistoryByStudent(ctx context.Context, studentID uuid.UUID, from, to string) ([]model.AttendanceRecordModel, error) {
	return s.Store.ListByStudent(ctx, studentID, from, to)
}

// Statistik kehadiran seorang siswa. late dihitung "hadir" untuk rate.
type StudentStats struct {
	TotalDays      int `json:"total_days"`
	PresentDays    int `json:"present_days"`
	LateDays       int `json:"late_days"`
	AbsentDays     int `json:"absent_days"`
	AttendanceRate int `json:"attendance_rate"` // persen, dibulatkan
}

func (s *AttendanceService) Stats(ctx context.Context, studentID uuid.UUID, from, to string) (StudentStats, error) {
	rows, err := s.Store.ListByStudent(ctx, studentID, from, to)
	if err != nil {
		return StudentStats{}, err
	}
	return ComputeStats(rows), nil
}

func ComputeStats(rows []model.AttendanceRecordModel) StudentStats {
	st := StudentStats{TotalDays: len(rows)}
	for _, r := range rows {
		switch r.AttendanceRecordStatus {
		case StatusPresent:
			st.PresentDays++
		case StatusLate:
			st.LateDays++
		case StatusAbsent:
			st.AbsentDays++
		}
	}
	if st.TotalDays > 0 {
		st.AttendanceRate = int(math.Round(100 * float64(st.PresentDays+st.LateDays) / float64(st.TotalDays)))
	}
	return st
}
