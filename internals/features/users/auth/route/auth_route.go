package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authCtrl "schoolku_backend/internals/features/users/auth/controller"
)

// Jalur publik (sebelum AuthJWT)
func AuthRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := authCtrl.NewAuthController(db)

	r.Post("/register", ctrl.Register)
	r.Post("/login", ctrl.Login)
	r.Post("/refresh-token", ctrl.RefreshToken)
	r.Post("/logout", ctrl.Logout)
}

// Jalur user login
func AuthUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := authCtrl.NewAuthController(db)

	r.Get("/me", ctrl.Me)
}
