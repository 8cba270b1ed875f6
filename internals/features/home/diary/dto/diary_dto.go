package dto

import (
	"github.com/google/uuid"

	"schoolku_backend/internals/features/home/diary/model"
)

type CreateDiaryEntryRequest struct {
	DiaryEntryClassID uuid.UUID `json:"diary_entry_class_id" validate:"required"`
	DiaryEntryDate    string    `json:"diary_entry_date" validate:"required,datetime=2006-01-02"`
	DiaryEntryTitle   string    `json:"diary_entry_title" validate:"required,min=2,max=150"`
	DiaryEntryContent string    `json:"diary_entry_content" validate:"required,max=5000"`
}

type UpdateDiaryEntryRequest struct {
	DiaryEntryTitle   *string `json:"diary_entry_title,omitempty" validate:"omitempty,min=2,max=150"`
	DiaryEntryContent *string `json:"diary_entry_content,omitempty" validate:"omitempty,max=5000"`
}

type DiaryEntryResponse struct {
	DiaryEntryID        uuid.UUID `json:"diary_entry_id"`
	DiaryEntryClassID   uuid.UUID `json:"diary_entry_class_id"`
	DiaryEntryTeacherID uuid.UUID `json:"diary_entry_teacher_id"`
	DiaryEntryDate      string    `json:"diary_entry_date"`
	DiaryEntryTitle     string    `json:"diary_entry_title"`
	DiaryEntryContent   string    `json:"diary_entry_content"`
}

func FromDiaryEntryModel(m model.DiaryEntryModel) DiaryEntryResponse {
	return DiaryEntryResponse{
		DiaryEntryID:        m.DiaryEntryID,
		DiaryEntryClassID:   m.DiaryEntryClassID,
		DiaryEntryTeacherID: m.DiaryEntryTeacherID,
		DiaryEntryDate:      m.DiaryEntryDate,
		DiaryEntryTitle:     m.DiaryEntryTitle,
		DiaryEntryContent:   m.DiaryEntryContent,
	}
}

func FromDiaryEntryModels(ms []model.DiaryEntryModel) []DiaryEntryResponse {
	out := make([]DiaryEntryResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromDiaryEntryModel(m))
	}
	return out
}
