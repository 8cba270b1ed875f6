package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestStagingIsolationAndCount(t *testing.T) {
	st := NewStagingStore()
	a := uuid.New()
	b := uuid.New()

	st.Put(StagedEntry{StudentID: a, Status: StatusPresent, MarkedAt: time.Now()})
	if st.Count() != 1 {
		t.Fatalf("count = %d, want 1", st.Count())
	}

	st.Put(StagedEntry{StudentID: b, Status: StatusAbsent, MarkedAt: time.Now()})
	if st.Count() != 2 {
		t.Fatalf("count = %d, want 2", st.Count())
	}

	// re-mark siswa yang sama: overwrite, count tetap
	st.Put(StagedEntry{StudentID: a, Status: StatusLate, LateMinutes: 20, MarkedAt: time.Now()})
	if st.Count() != 2 {
		t.Fatalf("count setelah re-mark = %d, want 2", st.Count())
	}

	ea, ok := st.Get(a)
	if !ok || ea.Status != StatusLate || ea.LateMinutes != 20 {
		t.Errorf("entry A harus ter-overwrite jadi late 20, dapat %+v", ea)
	}
	eb, ok := st.Get(b)
	if !ok || eb.Status != StatusAbsent {
		t.Errorf("entry B tidak boleh berubah karena A di-mark ulang, dapat %+v", eb)
	}
}

func TestStagingSnapshotIsCopy(t *testing.T) {
	st := NewStagingStore()
	a := uuid.New()
	st.Put(StagedEntry{StudentID: a, Status: StatusPresent})

	snap := st.Snapshot()
	delete(snap, a)
	if st.Count() != 1 {
		t.Error("mutasi snapshot tidak boleh menyentuh store")
	}
}

func TestStagingClearAndRemove(t *testing.T) {
	st := NewStagingStore()
	a := uuid.New()
	b := uuid.New()
	st.Put(StagedEntry{StudentID: a, Status: StatusPresent})
	st.Put(StagedEntry{StudentID: b, Status: StatusPresent})

	st.Remove(a)
	if _, ok := st.Get(a); ok {
		t.Error("entry A harus hilang setelah Remove")
	}
	if st.Count() != 1 {
		t.Errorf("count = %d, want 1", st.Count())
	}

	st.Clear()
	if st.Count() != 0 {
		t.Errorf("count setelah Clear = %d, want 0", st.Count())
	}
}

func TestStagingBeginPostGuard(t *testing.T) {
	st := NewStagingStore()
	if !st.BeginPost() {
		t.Fatal("BeginPost pertama harus berhasil")
	}
	if st.BeginPost() {
		t.Error("BeginPost kedua saat posting berjalan harus ditolak")
	}
	st.EndPost()
	if !st.BeginPost() {
		t.Error("BeginPost setelah EndPost harus berhasil lagi")
	}
}

func TestHubSessionScoping(t *testing.T) {
	hub := NewStagingHub()
	teacher := uuid.New()
	class := uuid.New()

	s1 := hub.Session(teacher, class, "2025-08-18")
	s2 := hub.Session(teacher, class, "2025-08-18")
	if s1 != s2 {
		t.Error("sesi yang sama harus mengembalikan store yang sama")
	}

	other := hub.Session(teacher, class, "2025-08-19")
	if other == s1 {
		t.Error("tanggal berbeda = sesi berbeda")
	}
	otherTeacher := hub.Session(uuid.New(), class, "2025-08-18")
	if otherTeacher == s1 {
		t.Error("guru berbeda = sesi berbeda")
	}
}
