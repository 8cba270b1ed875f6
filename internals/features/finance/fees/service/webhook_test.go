package service

import (
	"testing"

	"schoolku_backend/internals/features/finance/fees/model"
)

func TestResolveBillStatus(t *testing.T) {
	tests := []struct {
		name string
		n    PaymentNotification
		want string
	}{
		{name: "settlement lunas", n: PaymentNotification{TransactionStatus: "settlement"}, want: model.BillStatusPaid},
		{name: "capture accept lunas", n: PaymentNotification{TransactionStatus: "capture", FraudStatus: "accept"}, want: model.BillStatusPaid},
		{name: "capture challenge tetap pending", n: PaymentNotification{TransactionStatus: "capture", FraudStatus: "challenge"}, want: model.BillStatusPending},
		{name: "pending", n: PaymentNotification{TransactionStatus: "pending"}, want: model.BillStatusPending},
		{name: "cancel balik unpaid", n: PaymentNotification{TransactionStatus: "cancel"}, want: model.BillStatusUnpaid},
		{name: "deny balik unpaid", n: PaymentNotification{TransactionStatus: "deny"}, want: model.BillStatusUnpaid},
		{name: "expire", n: PaymentNotification{TransactionStatus: "expire"}, want: model.BillStatusExpired},
		{name: "status asing diabaikan", n: PaymentNotification{TransactionStatus: "refund"}, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveBillStatus(tt.n); got != tt.want {
				t.Errorf("ResolveBillStatus = %q, want %q", got, tt.want)
			}
		})
	}
}
