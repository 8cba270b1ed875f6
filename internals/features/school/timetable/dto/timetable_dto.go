package dto

import (
	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/timetable/model"
	helper "schoolku_backend/internals/helpers"
)

type CreateLectureSlotRequest struct {
	LectureSlotClassID   uuid.UUID `json:"lecture_slot_class_id" validate:"required"`
	LectureSlotTeacherID uuid.UUID `json:"lecture_slot_teacher_id" validate:"required"`
	LectureSlotSubject   string    `json:"lecture_slot_subject" validate:"required,min=2,max=80"`

	LectureSlotDayOfWeek int    `json:"lecture_slot_day_of_week" validate:"required,min=1,max=7"`
	LectureSlotStartTime string `json:"lecture_slot_start_time" validate:"required,len=5"` // HH:MM
	LectureSlotEndTime   string `json:"lecture_slot_end_time" validate:"required,len=5"`   // HH:MM
}

type LectureSlotResponse struct {
	LectureSlotID        uuid.UUID `json:"lecture_slot_id"`
	LectureSlotClassID   uuid.UUID `json:"lecture_slot_class_id"`
	LectureSlotTeacherID uuid.UUID `json:"lecture_slot_teacher_id"`
	LectureSlotSubject   string    `json:"lecture_slot_subject"`

	LectureSlotDayOfWeek int    `json:"lecture_slot_day_of_week"`
	LectureSlotStartTime string `json:"lecture_slot_start_time"`
	LectureSlotEndTime   string `json:"lecture_slot_end_time"`
}

func FromLectureSlotModel(m model.LectureSlotModel) LectureSlotResponse {
	return LectureSlotResponse{
		LectureSlotID:        m.LectureSlotID,
		LectureSlotClassID:   m.LectureSlotClassID,
		LectureSlotTeacherID: m.LectureSlotTeacherID,
		LectureSlotSubject:   m.LectureSlotSubject,
		LectureSlotDayOfWeek: m.LectureSlotDayOfWeek,
		LectureSlotStartTime: helper.FormatClock(m.LectureSlotStartMinutes),
		LectureSlotEndTime:   helper.FormatClock(m.LectureSlotEndMinutes),
	}
}

func FromLectureSlotModels(ms []model.LectureSlotModel) []LectureSlotResponse {
	out := make([]LectureSlotResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromLectureSlotModel(m))
	}
	return out
}
