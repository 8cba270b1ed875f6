package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	BillStatusUnpaid  = "unpaid"
	BillStatusPending = "pending" // menunggu konfirmasi gateway
	BillStatusPaid    = "paid"
	BillStatusExpired = "expired"
)

// Tagihan SPP / biaya sekolah per siswa. order_id dipakai sebagai
// referensi ke payment gateway, unik per tagihan.
type FeeBillModel struct {
	FeeBillID uuid.UUID `gorm:"column:fee_bill_id;type:uuid;default:gen_random_uuid();primaryKey" json:"fee_bill_id"`

	FeeBillStudentID uuid.UUID `gorm:"column:fee_bill_student_id;type:uuid;not null;index" json:"fee_bill_student_id"`
	FeeBillOrderID   string    `gorm:"column:fee_bill_order_id;type:varchar(64);uniqueIndex;not null" json:"fee_bill_order_id"`

	FeeBillTitle  string `gorm:"column:fee_bill_title;type:varchar(120);not null" json:"fee_bill_title"`
	FeeBillAmount int64  `gorm:"column:fee_bill_amount;not null" json:"fee_bill_amount"` // rupiah
	FeeBillStatus string `gorm:"column:fee_bill_status;type:varchar(10);not null;default:'unpaid'" json:"fee_bill_status"`

	FeeBillPaidAt *time.Time `gorm:"column:fee_bill_paid_at" json:"fee_bill_paid_at,omitempty"`

	FeeBillCreatedAt time.Time `gorm:"column:fee_bill_created_at;autoCreateTime" json:"fee_bill_created_at"`
	FeeBillUpdatedAt time.Time `gorm:"column:fee_bill_updated_at;autoUpdateTime" json:"fee_bill_updated_at"`
}

func (FeeBillModel) TableName() string { return "fee_bills" }
