// file: internals/route/details/auth_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeroute "schoolku_backend/internals/features/finance/fees/route"
	authroute "schoolku_backend/internals/features/users/auth/route"
	"schoolku_backend/internals/middlewares"
)

// /api/auth — login/register dibatasi rate limiter khusus.
func AuthRoutes(r fiber.Router, db *gorm.DB) {
	r.Use(middlewares.LoginRateLimiter())
	authroute.AuthRoutes(r, db)
}

// /api/public — endpoint tanpa auth (webhook gateway pembayaran).
func PublicRoutes(r fiber.Router, db *gorm.DB) {
	feeroute.FeePublicRoutes(r, db)
}
