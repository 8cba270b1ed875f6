// file: internals/features/finance/fees/service/webhook.go
package service

import (
	"schoolku_backend/internals/features/finance/fees/model"
)

// Payload notifikasi HTTP dari Midtrans (field yang kita pakai saja).
type PaymentNotification struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
}

// ResolveBillStatus memetakan transaction_status gateway → status tagihan.
// String kosong = tidak ada perubahan status (notifikasi diabaikan).
func ResolveBillStatus(n PaymentNotification) string {
	switch n.TransactionStatus {
	case "capture":
		if n.FraudStatus == "accept" {
			return model.BillStatusPaid
		}
		return model.BillStatusPending
	case "settlement":
		return model.BillStatusPaid
	case "pending":
		return model.BillStatusPending
	case "deny", "cancel":
		return model.BillStatusUnpaid
	case "expire":
		return model.BillStatusExpired
	default:
		return ""
	}
}
