package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/attendance/model"
)

// fakeRecordStore meniru semantik upsert DB: satu baris per (student, date),
// tabrakan kunci = update, bukan duplikat.
type fakeRecordStore struct {
	mu        sync.Mutex
	rows      map[string]model.AttendanceRecordModel
	summaries map[string]model.AttendanceDaySummaryModel

	failUpsert error
	failExists error
}

func newFakeRecordStore() *fakeRecordStore {
	return &fakeRecordStore{
		rows:      make(map[string]model.AttendanceRecordModel),
		summaries: make(map[string]model.AttendanceDaySummaryModel),
	}
}

func recordKey(studentID uuid.UUID, date string) string {
	return studentID.String() + "|" + date
}

func (f *fakeRecordStore) ListByClassAndRange(_ context.Context, classID uuid.UUID, from, to string) ([]model.AttendanceRecordModel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.AttendanceRecordModel
	for _, r := range f.rows {
		if r.AttendanceRecordClassID != classID {
			continue
		}
		if from != "" && r.AttendanceRecordDate < from {
			continue
		}
		if to != "" && r.AttendanceRecordDate > to {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRecordStore) ListByStudent(_ context.Context, studentID uuid.UUID, from, to string) ([]model.AttendanceRecordModel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.AttendanceRecordModel
	for _, r := range f.rows {
		if r.AttendanceRecordStudentID != studentID {
			continue
		}
		if from != "" && r.AttendanceRecordDate < from {
			continue
		}
		if to != "" && r.AttendanceRecordDate > to {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRecordStore) Exists(_ context.Context, studentID uuid.UUID, date string) (bool, error) {
	if f.failExists != nil {
		return false, f.failExists
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.rows[recordKey(studentID, date)]
	return ok, nil
}

func (f *fakeRecordStore) UpsertBatch(_ context.Context, rows []model.AttendanceRecordModel) error {
	if f.failUpsert != nil {
		return f.failUpsert
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range rows {
		key := recordKey(r.AttendanceRecordStudentID, r.AttendanceRecordDate)
		if existing, ok := f.rows[key]; ok {
			r.AttendanceRecordID = existing.AttendanceRecordID // conflict → update
		} else {
			r.AttendanceRecordID = uuid.New()
		}
		f.rows[key] = r
	}
	return nil
}

func (f *fakeRecordStore) SaveDaySummary(_ context.Context, s *model.AttendanceDaySummaryModel) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.summaries[s.AttendanceDaySummaryClassID.String()+"|"+s.AttendanceDaySummaryDate] = *s
	return nil
}

func newTestService(store RecordStore) *AttendanceService {
	return NewAttendanceService(store, NewStagingHub(), defaultSettings())
}

const testDate = "2025-08-18"

func TestMarkRejectedWhenPersisted(t *testing.T) {
	store := newFakeRecordStore()
	s := newTestService(store)
	teacher := uuid.New()
	class := uuid.New()
	locked := uuid.New()
	free := uuid.New()

	// siswa "locked" sudah punya record permanen hari ini
	_ = store.UpsertBatch(context.Background(), []model.AttendanceRecordModel{{
		AttendanceRecordStudentID: locked,
		AttendanceRecordClassID:   class,
		AttendanceRecordDate:      testDate,
		AttendanceRecordStatus:    StatusPresent,
	}})

	if _, err := s.Mark(context.Background(), teacher, class, testDate, locked, StatusPresent, nil, nil); !errors.Is(err, ErrAlreadyRecorded) {
		t.Fatalf("mark siswa persisted harus ErrAlreadyRecorded, dapat %v", err)
	}
	if s.StagedCount(teacher, class, testDate) != 0 {
		t.Error("staging harus tetap kosong setelah mark ditolak")
	}

	// siswa tanpa record permanen tetap bisa ditandai
	if _, err := s.Mark(context.Background(), teacher, class, testDate, free, StatusPresent, minutes(16, 5), nil); err != nil {
		t.Fatalf("mark siswa bebas gagal: %v", err)
	}
	if s.StagedCount(teacher, class, testDate) != 1 {
		t.Error("staging harus berisi 1 entry")
	}
}

func TestPostEmptyStaging(t *testing.T) {
	s := newTestService(newFakeRecordStore())
	if _, err := s.Post(context.Background(), uuid.New(), uuid.New(), testDate); !errors.Is(err, ErrNoStaged) {
		t.Fatalf("post tanpa staging harus ErrNoStaged, dapat %v", err)
	}
}

func TestPostClearsStagingOnlyOnSuccess(t *testing.T) {
	store := newFakeRecordStore()
	s := newTestService(store)
	teacher := uuid.New()
	class := uuid.New()
	a := uuid.New()
	b := uuid.New()

	mustMark := func(id uuid.UUID, status string, arrival *int) {
		t.Helper()
		if _, err := s.Mark(context.Background(), teacher, class, testDate, id, status, arrival, nil); err != nil {
			t.Fatalf("mark: %v", err)
		}
	}
	mustMark(a, StatusPresent, minutes(16, 5))
	mustMark(b, StatusAbsent, nil)

	// gagal → staging utuh
	store.failUpsert = errors.New("koneksi putus")
	if _, err := s.Post(context.Background(), teacher, class, testDate); err == nil {
		t.Fatal("post harus gagal saat store error")
	}
	if got := s.StagedCount(teacher, class, testDate); got != 2 {
		t.Fatalf("staging setelah post gagal = %d, want 2 (kerjaan guru tidak boleh hilang)", got)
	}

	// retry sukses → staging kosong
	store.failUpsert = nil
	records, err := s.Post(context.Background(), teacher, class, testDate)
	if err != nil {
		t.Fatalf("retry post gagal: %v", err)
	}
	if got := s.StagedCount(teacher, class, testDate); got != 0 {
		t.Errorf("staging setelah post sukses = %d, want 0", got)
	}
	if len(records) != 2 {
		t.Errorf("record kanonik = %d, want 2", len(records))
	}
}

func TestPostIdempotentUnderRetry(t *testing.T) {
	store := newFakeRecordStore()
	s := newTestService(store)
	teacher := uuid.New()
	class := uuid.New()
	a := uuid.New()

	if _, err := s.Mark(context.Background(), teacher, class, testDate, a, StatusPresent, minutes(16, 30), nil); err != nil {
		t.Fatal(err)
	}

	// snapshot staging yang sama dipost dua kali (simulasi retry di bawah level service)
	snap := s.Staged(teacher, class, testDate)
	rows := make([]model.AttendanceRecordModel, 0, len(snap))
	for _, e := range snap {
		rows = append(rows, model.AttendanceRecordModel{
			AttendanceRecordStudentID: e.StudentID,
			AttendanceRecordClassID:   class,
			AttendanceRecordDate:      testDate,
			AttendanceRecordStatus:    e.Status,
			AttendanceRecordMarkedBy:  teacher,
		})
	}
	if err := store.UpsertBatch(context.Background(), rows); err != nil {
		t.Fatal(err)
	}
	// payload kedua beda status; harus menang tanpa bikin baris baru
	rows[0].AttendanceRecordStatus = StatusAbsent
	if err := store.UpsertBatch(context.Background(), rows); err != nil {
		t.Fatal(err)
	}

	got, _ := store.ListByStudent(context.Background(), a, "", "")
	if len(got) != 1 {
		t.Fatalf("baris per (siswa,tanggal) = %d, want 1", len(got))
	}
	if got[0].AttendanceRecordStatus != StatusAbsent {
		t.Errorf("nilai akhir harus dari post terakhir, dapat %s", got[0].AttendanceRecordStatus)
	}
}

func TestPostReentrancyGuard(t *testing.T) {
	store := newFakeRecordStore()
	s := newTestService(store)
	teacher := uuid.New()
	class := uuid.New()

	if _, err := s.Mark(context.Background(), teacher, class, testDate, uuid.New(), StatusPresent, minutes(16, 0), nil); err != nil {
		t.Fatal(err)
	}

	staging := s.Hub.Session(teacher, class, testDate)
	if !staging.BeginPost() {
		t.Fatal("gagal ambil guard posting")
	}
	// tap kedua saat posting berjalan
	if _, err := s.Post(context.Background(), teacher, class, testDate); !errors.Is(err, ErrPostInFlight) {
		t.Fatalf("post saat in-flight harus ErrPostInFlight, dapat %v", err)
	}
	staging.EndPost()
}

func TestResolveDisplayState(t *testing.T) {
	rec := &model.AttendanceRecordModel{AttendanceRecordStatus: StatusPresent}
	entry := &StagedEntry{Status: StatusLate}

	tests := []struct {
		name       string
		persisted  *model.AttendanceRecordModel
		staged     *StagedEntry
		wantState  string
		wantSource string
	}{
		{name: "belum ada apa-apa", wantState: StateUnmarked, wantSource: SourceNone},
		{name: "hanya staging", staged: entry, wantState: StateStaged, wantSource: SourceTemporary},
		{name: "hanya permanen", persisted: rec, wantState: StatePersisted, wantSource: SourceDatabase},
		{name: "permanen menang atas staging yatim", persisted: rec, staged: entry, wantState: StatePersisted, wantSource: SourceDatabase},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, source := ResolveDisplayState(tt.persisted, tt.staged)
			if state != tt.wantState || source != tt.wantSource {
				t.Errorf("= (%s, %s), want (%s, %s)", state, source, tt.wantState, tt.wantSource)
			}
		})
	}
}

func TestComputeStatsRate(t *testing.T) {
	mk := func(present, late, absent int) []model.AttendanceRecordModel {
		var rows []model.AttendanceRecordModel
		add := func(status string, n int) {
			for i := 0; i < n; i++ {
				rows = append(rows, model.AttendanceRecordModel{AttendanceRecordStatus: status})
			}
		}
		add(StatusPresent, present)
		add(StatusLate, late)
		add(StatusAbsent, absent)
		return rows
	}

	tests := []struct {
		name     string
		rows     []model.AttendanceRecordModel
		wantRate int
	}{
		{name: "late dihitung hadir", rows: mk(8, 2, 0), wantRate: 100},
		{name: "tanpa data rate 0", rows: mk(0, 0, 0), wantRate: 0},
		{name: "setengah hadir", rows: mk(5, 0, 5), wantRate: 50},
		{name: "pembulatan", rows: mk(1, 0, 2), wantRate: 33},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := ComputeStats(tt.rows)
			if st.AttendanceRate != tt.wantRate {
				t.Errorf("rate = %d, want %d", st.AttendanceRate, tt.wantRate)
			}
			if st.TotalDays != len(tt.rows) {
				t.Errorf("totalDays = %d, want %d", st.TotalDays, len(tt.rows))
			}
		})
	}
}

// Skenario lengkap: 3 siswa, 2 ditandai, posting, verifikasi kanonik + rekap.
func TestEndToEndMarkingSession(t *testing.T) {
	store := newFakeRecordStore()
	s := newTestService(store)
	teacher := uuid.New()
	class := uuid.New()
	s1 := uuid.New()
	s2 := uuid.New()
	s3 := uuid.New() // tidak ditandai

	posted := make(chan model.AttendanceDaySummaryModel, 1)
	s.OnPosted = func(_ context.Context, _ uuid.UUID, _ string, sum model.AttendanceDaySummaryModel) {
		posted <- sum
	}

	if _, err := s.Mark(context.Background(), teacher, class, testDate, s1, StatusPresent, minutes(16, 10), nil); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Mark(context.Background(), teacher, class, testDate, s2, StatusPresent, minutes(16, 30), nil); err != nil {
		t.Fatal(err)
	}
	if got := s.StagedCount(teacher, class, testDate); got != 2 {
		t.Fatalf("staged count = %d, want 2", got)
	}

	records, err := s.Post(context.Background(), teacher, class, testDate)
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	if s.StagedCount(teacher, class, testDate) != 0 {
		t.Error("staging harus kosong setelah post sukses")
	}
	if len(records) != 2 {
		t.Fatalf("record kanonik = %d, want 2", len(records))
	}

	byStudent := make(map[uuid.UUID]model.AttendanceRecordModel)
	for _, r := range records {
		byStudent[r.AttendanceRecordStudentID] = r
	}

	r1 := byStudent[s1]
	if r1.AttendanceRecordStatus != StatusPresent || r1.AttendanceRecordLateMinutes != nil {
		t.Errorf("siswa1 harus present tanpa late, dapat %+v", r1)
	}
	if r1.AttendanceRecordArrivalTime == nil || *r1.AttendanceRecordArrivalTime != "16:10" {
		t.Errorf("siswa1 arrival = %v, want 16:10", r1.AttendanceRecordArrivalTime)
	}

	r2 := byStudent[s2]
	if r2.AttendanceRecordStatus != StatusLate {
		t.Errorf("siswa2 harus late, dapat %s", r2.AttendanceRecordStatus)
	}
	if r2.AttendanceRecordLateMinutes == nil || *r2.AttendanceRecordLateMinutes != 30 {
		t.Errorf("siswa2 lateMinutes = %v, want 30", r2.AttendanceRecordLateMinutes)
	}
	if r2.AttendanceRecordMarkedBy != teacher {
		t.Error("marked_by harus guru yang posting")
	}

	if _, ok := byStudent[s3]; ok {
		t.Error("siswa3 tidak ditandai, tidak boleh ikut terposting")
	}
	state, _ := ResolveDisplayState(nil, nil)
	if state != StateUnmarked {
		t.Errorf("siswa3 harus tetap unmarked, dapat %s", state)
	}

	sum := <-posted
	if sum.AttendanceDaySummaryPresentCount != 1 || sum.AttendanceDaySummaryLateCount != 1 || sum.AttendanceDaySummaryAbsentCount != 0 {
		t.Errorf("rekap = %+v, want present 1 / late 1 / absent 0", sum)
	}
	if sum.AttendanceDaySummaryTotalStudents != 2 {
		t.Errorf("total siswa terekam = %d, want 2", sum.AttendanceDaySummaryTotalStudents)
	}
}
