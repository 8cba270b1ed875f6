package service

import (
	"schoolku_backend/internals/features/school/timetable/model"
)

// Overlaps: dua slot bentrok kalau di hari yang sama rentangnya beririsan.
// Batas nempel (end A == start B) bukan bentrok.
func Overlaps(a, b model.LectureSlotModel) bool {
	if a.LectureSlotDayOfWeek != b.LectureSlotDayOfWeek {
		return false
	}
	return a.LectureSlotStartMinutes < b.LectureSlotEndMinutes &&
		b.LectureSlotStartMinutes < a.LectureSlotEndMinutes
}

// FindConflict mencari slot pertama di existing yang bentrok dengan candidate
// di kelas yang sama ATAU guru yang sama (guru tidak bisa di dua kelas
// sekaligus). Slot dengan ID sama dilewati supaya update tidak bentrok
// dengan dirinya sendiri.
func FindConflict(candidate model.LectureSlotModel, existing []model.LectureSlotModel) *model.LectureSlotModel {
	for i := range existing {
		e := existing[i]
		if e.LectureSlotID == candidate.LectureSlotID {
			continue
		}
		sameClass := e.LectureSlotClassID == candidate.LectureSlotClassID
		sameTeacher := e.LectureSlotTeacherID == candidate.LectureSlotTeacherID
		if !sameClass && !sameTeacher {
			continue
		}
		if Overlaps(candidate, e) {
			return &existing[i]
		}
	}
	return nil
}
