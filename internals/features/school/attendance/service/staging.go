package service

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Tanda kehadiran sementara (belum diposting). Hilang kalau server restart —
// memang dirancang begitu: staging hanya hidup selama sesi penandaan guru.
type StagedEntry struct {
	StudentID      uuid.UUID `json:"student_id"`
	Status         string    `json:"status"`
	ArrivalMinutes *int      `json:"arrival_minutes,omitempty"`
	LateMinutes    int       `json:"late_minutes"`
	Note           *string   `json:"note,omitempty"`
	MarkedAt       time.Time `json:"marked_at"`
}

// StagingStore menampung tanda sementara satu sesi (guru+kelas+tanggal).
// Tap ulang siswa yang sama = overwrite (last write wins, tanpa riwayat).
type StagingStore struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]StagedEntry

	// guard anti re-entrant post: tap kedua saat posting berjalan diabaikan
	posting atomic.Bool
}

func NewStagingStore() *StagingStore {
	return &StagingStore{entries: make(map[uuid.UUID]StagedEntry)}
}

func (s *StagingStore) Put(e StagedEntry) {
	s.mu.Lock()
	s.entries[e.StudentID] = e
	s.mu.Unlock()
}

func (s *StagingStore) Get(studentID uuid.UUID) (StagedEntry, bool) {
	s.mu.RLock()
	e, ok := s.entries[studentID]
	s.mu.RUnlock()
	return e, ok
}

func (s *StagingStore) Remove(studentID uuid.UUID) {
	s.mu.Lock()
	delete(s.entries, studentID)
	s.mu.Unlock()
}

// Clear hanya dipanggil setelah posting dikonfirmasi sukses.
func (s *StagingStore) Clear() {
	s.mu.Lock()
	s.entries = make(map[uuid.UUID]StagedEntry)
	s.mu.Unlock()
}

// Snapshot untuk render / posting; map hasil copy, aman dipakai tanpa lock.
func (s *StagingStore) Snapshot() map[uuid.UUID]StagedEntry {
	s.mu.RLock()
	out := make(map[uuid.UUID]StagedEntry, len(s.entries))
	for k, v := range s.entries {
		out[k] = v
	}
	s.mu.RUnlock()
	return out
}

func (s *StagingStore) Count() int {
	s.mu.RLock()
	n := len(s.entries)
	s.mu.RUnlock()
	return n
}

// BeginPost mencoba mengunci sesi untuk satu operasi posting.
// false = sudah ada posting berjalan untuk sesi ini.
func (s *StagingStore) BeginPost() bool { return s.posting.CompareAndSwap(false, true) }
func (s *StagingStore) EndPost()        { s.posting.Store(false) }

// StagingHub membagikan StagingStore per sesi penandaan.
// Kunci sesi: guru + kelas + tanggal. Tidak ada koordinasi lintas sesi —
// dua guru yang menandai kelas yang sama diselesaikan oleh upsert di DB
// (last writer wins), bukan oleh locking di sini.
type StagingHub struct {
	mu       sync.Mutex
	sessions map[string]*StagingStore
}

func NewStagingHub() *StagingHub {
	return &StagingHub{sessions: make(map[string]*StagingStore)}
}

func (h *StagingHub) Session(teacherID, classID uuid.UUID, date string) *StagingStore {
	key := teacherID.String() + "|" + classID.String() + "|" + date
	h.mu.Lock()
	defer h.mu.Unlock()
	if st, ok := h.sessions[key]; ok {
		return st
	}
	st := NewStagingStore()
	h.sessions[key] = st
	return st
}
