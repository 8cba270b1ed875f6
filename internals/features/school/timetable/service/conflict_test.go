package service

import (
	"testing"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/timetable/model"
)

func slot(day, start, end int) model.LectureSlotModel {
	return model.LectureSlotModel{
		LectureSlotID:           uuid.New(),
		LectureSlotDayOfWeek:    day,
		LectureSlotStartMinutes: start,
		LectureSlotEndMinutes:   end,
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b model.LectureSlotModel
		want bool
	}{
		{name: "beririsan sebagian", a: slot(1, 480, 540), b: slot(1, 520, 580), want: true},
		{name: "b di dalam a", a: slot(1, 480, 600), b: slot(1, 500, 520), want: true},
		{name: "nempel batas bukan bentrok", a: slot(1, 480, 540), b: slot(1, 540, 600), want: false},
		{name: "hari beda tidak bentrok", a: slot(1, 480, 540), b: slot(2, 480, 540), want: false},
		{name: "terpisah jauh", a: slot(1, 480, 540), b: slot(1, 600, 660), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a, tt.b); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			// simetris
			if got := Overlaps(tt.b, tt.a); got != tt.want {
				t.Errorf("Overlaps (dibalik) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindConflict(t *testing.T) {
	class := uuid.New()
	teacher := uuid.New()

	existing := slot(1, 480, 540)
	existing.LectureSlotClassID = class
	existing.LectureSlotTeacherID = teacher

	t.Run("kelas sama jam beririsan = bentrok", func(t *testing.T) {
		cand := slot(1, 500, 560)
		cand.LectureSlotClassID = class
		cand.LectureSlotTeacherID = uuid.New()
		if FindConflict(cand, []model.LectureSlotModel{existing}) == nil {
			t.Error("harus ketemu konflik")
		}
	})

	t.Run("guru sama beda kelas tetap bentrok", func(t *testing.T) {
		cand := slot(1, 500, 560)
		cand.LectureSlotClassID = uuid.New()
		cand.LectureSlotTeacherID = teacher
		if FindConflict(cand, []model.LectureSlotModel{existing}) == nil {
			t.Error("guru tidak bisa di dua kelas sekaligus")
		}
	})

	t.Run("kelas dan guru beda tidak bentrok", func(t *testing.T) {
		cand := slot(1, 500, 560)
		cand.LectureSlotClassID = uuid.New()
		cand.LectureSlotTeacherID = uuid.New()
		if FindConflict(cand, []model.LectureSlotModel{existing}) != nil {
			t.Error("tidak boleh ada konflik")
		}
	})

	t.Run("update slot tidak bentrok dengan dirinya sendiri", func(t *testing.T) {
		cand := existing
		cand.LectureSlotEndMinutes = 550
		if FindConflict(cand, []model.LectureSlotModel{existing}) != nil {
			t.Error("slot yang sama harus dilewati")
		}
	})
}
