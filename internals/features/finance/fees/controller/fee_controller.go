// file: internals/features/finance/fees/controller/fee_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/finance/fees/dto"
	"schoolku_backend/internals/features/finance/fees/model"
	"schoolku_backend/internals/features/finance/fees/service"
	helper "schoolku_backend/internals/helpers"
)

type FeeController struct {
	DB *gorm.DB
}

func NewFeeController(db *gorm.DB) *FeeController {
	return &FeeController{DB: db}
}

var validate = validator.New()

/* ===================== LIST PER SISWA ===================== */
// GET /fees?student_id=
func (ctrl *FeeController) GetBillsByStudent(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Query("student_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "student_id tidak valid")
	}

	var bills []model.FeeBillModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("fee_bill_student_id = ?", studentID).
		Order("fee_bill_created_at DESC").
		Find(&bills).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil tagihan")
	}

	return helper.JsonOK(c, "Daftar tagihan berhasil diambil", dto.FromFeeBillModels(bills))
}

/* ===================== CREATE (ADMIN) ===================== */
// POST /admin/fees
func (ctrl *FeeController) CreateBill(c *fiber.Ctx) error {
	var req dto.CreateFeeBillRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	bill := model.FeeBillModel{
		FeeBillStudentID: req.FeeBillStudentID,
		FeeBillOrderID:   fmt.Sprintf("SPP-%d-%s", time.Now().Unix(), uuid.NewString()[:8]),
		FeeBillTitle:     req.FeeBillTitle,
		FeeBillAmount:    req.FeeBillAmount,
		FeeBillStatus:    model.BillStatusUnpaid,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&bill).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan tagihan")
	}

	return helper.JsonCreated(c, "Tagihan berhasil dibuat", dto.FromFeeBillModel(bill))
}

/* ===================== PAY ===================== */
// POST /fees/:id/pay — minta snap token untuk bayar online
func (ctrl *FeeController) PayBill(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tagihan tidak valid")
	}

	var bill model.FeeBillModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&bill, "fee_bill_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Tagihan tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil tagihan")
	}
	if bill.FeeBillStatus == model.BillStatusPaid {
		return fiber.NewError(fiber.StatusConflict, "Tagihan sudah lunas")
	}

	payerName, _ := c.Locals("full_name").(string)
	token, redirect, err := service.GenerateSnapToken(bill, payerName, "")
	if err != nil {
		if errors.Is(err, service.ErrMidtransNotConfigured) {
			return fiber.NewError(fiber.StatusServiceUnavailable, err.Error())
		}
		return fiber.NewError(fiber.StatusBadGateway, "Gagal membuat transaksi pembayaran")
	}

	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&bill).Update("fee_bill_status", model.BillStatusPending).Error; err != nil {
		log.Printf("[WARN] update status pending %s gagal: %v", bill.FeeBillOrderID, err)
	}

	return helper.JsonOK(c, "Transaksi pembayaran dibuat", dto.PayFeeBillResponse{
		SnapToken:   token,
		RedirectURL: redirect,
	})
}

/* ===================== WEBHOOK ===================== */
// POST /api/public/fees/webhook — notifikasi status dari payment gateway.
// Idempotent: notifikasi dobel untuk order yang sama aman diproses ulang.
func (ctrl *FeeController) PaymentWebhook(c *fiber.Ctx) error {
	var n service.PaymentNotification
	if err := c.BodyParser(&n); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if n.OrderID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "order_id wajib ada")
	}

	status := service.ResolveBillStatus(n)
	if status == "" {
		// status yang tidak kita kenal, balas 200 supaya gateway berhenti retry
		return helper.JsonOK(c, "Notifikasi diabaikan", nil)
	}

	updates := map[string]any{"fee_bill_status": status}
	if status == model.BillStatusPaid {
		updates["fee_bill_paid_at"] = time.Now()
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.FeeBillModel{}).
		Where("fee_bill_order_id = ?", n.OrderID).
		Updates(updates)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui tagihan")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Tagihan tidak ditemukan")
	}

	return helper.JsonOK(c, "Status tagihan diperbarui", fiber.Map{
		"order_id": n.OrderID,
		"status":   status,
	})
}
