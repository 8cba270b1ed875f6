// file: internals/features/finance/fees/service/midtrans.go
package service

import (
	"errors"
	"log"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"schoolku_backend/internals/features/finance/fees/model"
)

var snapClient snap.Client

var ErrMidtransNotConfigured = errors.New("payment gateway belum dikonfigurasi")

// InitMidtrans dipanggil sekali dari main. Server key kosong = fitur bayar
// online nonaktif, tagihan tetap bisa dibuat & dilihat.
func InitMidtrans(serverKey string, useProd bool) {
	if serverKey == "" {
		log.Println("[WARN] MIDTRANS_SERVER_KEY kosong, pembayaran online nonaktif")
		return
	}
	env := midtrans.Sandbox
	if useProd {
		env = midtrans.Production
	}
	snapClient.New(serverKey, env)
	log.Println("✅ Midtrans snap client siap")
}

func midtransReady() bool { return snapClient.ServerKey != "" }

// GenerateSnapToken membuat transaksi Snap untuk satu tagihan.
func GenerateSnapToken(bill model.FeeBillModel, payerName, payerEmail string) (string, string, error) {
	if !midtransReady() {
		return "", "", ErrMidtransNotConfigured
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  bill.FeeBillOrderID,
			GrossAmt: bill.FeeBillAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: payerName,
			Email: payerEmail,
		},
		Items: &[]midtrans.ItemDetails{{
			ID:    bill.FeeBillID.String(),
			Name:  bill.FeeBillTitle,
			Price: bill.FeeBillAmount,
			Qty:   1,
		}},
	}

	resp, err := snapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}
