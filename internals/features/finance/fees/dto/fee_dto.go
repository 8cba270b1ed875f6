package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/finance/fees/model"
)

type CreateFeeBillRequest struct {
	FeeBillStudentID uuid.UUID `json:"fee_bill_student_id" validate:"required"`
	FeeBillTitle     string    `json:"fee_bill_title" validate:"required,min=2,max=120"`
	FeeBillAmount    int64     `json:"fee_bill_amount" validate:"required,min=1000"`
}

type FeeBillResponse struct {
	FeeBillID        uuid.UUID  `json:"fee_bill_id"`
	FeeBillStudentID uuid.UUID  `json:"fee_bill_student_id"`
	FeeBillOrderID   string     `json:"fee_bill_order_id"`
	FeeBillTitle     string     `json:"fee_bill_title"`
	FeeBillAmount    int64      `json:"fee_bill_amount"`
	FeeBillStatus    string     `json:"fee_bill_status"`
	FeeBillPaidAt    *time.Time `json:"fee_bill_paid_at,omitempty"`
}

type PayFeeBillResponse struct {
	SnapToken   string `json:"snap_token"`
	RedirectURL string `json:"redirect_url"`
}

func FromFeeBillModel(m model.FeeBillModel) FeeBillResponse {
	return FeeBillResponse{
		FeeBillID:        m.FeeBillID,
		FeeBillStudentID: m.FeeBillStudentID,
		FeeBillOrderID:   m.FeeBillOrderID,
		FeeBillTitle:     m.FeeBillTitle,
		FeeBillAmount:    m.FeeBillAmount,
		FeeBillStatus:    m.FeeBillStatus,
		FeeBillPaidAt:    m.FeeBillPaidAt,
	}
}

func FromFeeBillModels(ms []model.FeeBillModel) []FeeBillResponse {
	out := make([]FeeBillResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromFeeBillModel(m))
	}
	return out
}
