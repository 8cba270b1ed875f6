package dto

import (
	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/classes/model"
)

type CreateClassRequest struct {
	ClassName              string     `json:"class_name" validate:"required,min=2,max=80"`
	ClassHomeroomTeacherID *uuid.UUID `json:"class_homeroom_teacher_id,omitempty"`

	// Override jadwal absensi (opsional, default global dipakai kalau kosong)
	ClassStartTime         *string `json:"class_start_time,omitempty" validate:"omitempty,len=5"`
	ClassLateCutoffMinutes *int    `json:"class_late_cutoff_minutes,omitempty" validate:"omitempty,min=0,max=120"`
}

type UpdateClassRequest struct {
	ClassName              *string    `json:"class_name,omitempty" validate:"omitempty,min=2,max=80"`
	ClassHomeroomTeacherID *uuid.UUID `json:"class_homeroom_teacher_id,omitempty"`

	ClassStartTime         *string `json:"class_start_time,omitempty" validate:"omitempty,len=5"`
	ClassLateCutoffMinutes *int    `json:"class_late_cutoff_minutes,omitempty" validate:"omitempty,min=0,max=120"`
}

type ClassResponse struct {
	ClassID                uuid.UUID  `json:"class_id"`
	ClassName              string     `json:"class_name"`
	ClassHomeroomTeacherID *uuid.UUID `json:"class_homeroom_teacher_id,omitempty"`
	ClassStartTime         *string    `json:"class_start_time,omitempty"`
	ClassLateCutoffMinutes *int       `json:"class_late_cutoff_minutes,omitempty"`
}

func FromClassModel(m model.ClassModel) ClassResponse {
	return ClassResponse{
		ClassID:                m.ClassID,
		ClassName:              m.ClassName,
		ClassHomeroomTeacherID: m.ClassHomeroomTeacherID,
		ClassStartTime:         m.ClassStartTime,
		ClassLateCutoffMinutes: m.ClassLateCutoffMinutes,
	}
}

func FromClassModels(ms []model.ClassModel) []ClassResponse {
	out := make([]ClassResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromClassModel(m))
	}
	return out
}
