package dto

import (
	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/students/model"
)

type CreateStudentRequest struct {
	StudentFullName   string     `json:"student_full_name" validate:"required,min=2,max=120"`
	StudentRollNumber int        `json:"student_roll_number" validate:"required,min=1"`
	StudentClassID    uuid.UUID  `json:"student_class_id" validate:"required"`
	StudentUserID     *uuid.UUID `json:"student_user_id,omitempty"`

	StudentGuardianName  *string `json:"student_guardian_name,omitempty" validate:"omitempty,max=120"`
	StudentGuardianPhone *string `json:"student_guardian_phone,omitempty" validate:"omitempty,max=30"`
}

type UpdateStudentRequest struct {
	StudentFullName   *string    `json:"student_full_name,omitempty" validate:"omitempty,min=2,max=120"`
	StudentRollNumber *int       `json:"student_roll_number,omitempty" validate:"omitempty,min=1"`
	StudentClassID    *uuid.UUID `json:"student_class_id,omitempty"`
	StudentUserID     *uuid.UUID `json:"student_user_id,omitempty"`

	StudentGuardianName  *string `json:"student_guardian_name,omitempty" validate:"omitempty,max=120"`
	StudentGuardianPhone *string `json:"student_guardian_phone,omitempty" validate:"omitempty,max=30"`
	StudentIsActive      *bool   `json:"student_is_active,omitempty"`
}

type StudentResponse struct {
	StudentID         uuid.UUID  `json:"student_id"`
	StudentUserID     *uuid.UUID `json:"student_user_id,omitempty"`
	StudentFullName   string     `json:"student_full_name"`
	StudentRollNumber int        `json:"student_roll_number"`
	StudentClassID    uuid.UUID  `json:"student_class_id"`

	StudentGuardianName  *string `json:"student_guardian_name,omitempty"`
	StudentGuardianPhone *string `json:"student_guardian_phone,omitempty"`
	StudentIsActive      bool    `json:"student_is_active"`
}

func FromStudentModel(m model.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:            m.StudentID,
		StudentUserID:        m.StudentUserID,
		StudentFullName:      m.StudentFullName,
		StudentRollNumber:    m.StudentRollNumber,
		StudentClassID:       m.StudentClassID,
		StudentGuardianName:  m.StudentGuardianName,
		StudentGuardianPhone: m.StudentGuardianPhone,
		StudentIsActive:      m.StudentIsActive,
	}
}

func FromStudentModels(ms []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromStudentModel(m))
	}
	return out
}
