package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeCtrl "schoolku_backend/internals/features/finance/fees/controller"
)

func FeeAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := feeCtrl.NewFeeController(db)

	g := r.Group("/fees")
	g.Get("/", ctrl.GetBillsByStudent)
	g.Post("/", ctrl.CreateBill)
}

func FeeUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := feeCtrl.NewFeeController(db)

	g := r.Group("/fees")
	g.Get("/", ctrl.GetBillsByStudent)
	g.Post("/:id/pay", ctrl.PayBill)
}

// Webhook gateway: tanpa AuthJWT, dipasang di group public.
func FeePublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := feeCtrl.NewFeeController(db)

	r.Post("/fees/webhook", ctrl.PaymentWebhook)
}
