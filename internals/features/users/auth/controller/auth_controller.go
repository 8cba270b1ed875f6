// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/users/auth/dto"
	"schoolku_backend/internals/features/users/auth/service"
	usermodel "schoolku_backend/internals/features/users/user/model"
	helper "schoolku_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

var validate = validator.New()

/* ===================== REGISTER ===================== */
// POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	role := req.Role
	if role == "" {
		role = constants.RoleStudent
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses password")
	}

	user := usermodel.UserModel{
		FullName: req.FullName,
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: string(hash),
		Role:     role,
		IsActive: true,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&user).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "23505") {
			return fiber.NewError(fiber.StatusConflict, "Email sudah terdaftar")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan akun")
	}

	return helper.JsonCreated(c, "Registrasi berhasil", dto.FromUserModel(user))
}

/* ===================== LOGIN ===================== */
// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var user usermodel.UserModel
	err := ctrl.DB.WithContext(c.UserContext()).
		First(&user, "email = ? AND is_active = ?", strings.ToLower(strings.TrimSpace(req.Email)), true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses login")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
	}

	access, err := service.GenerateAccessToken(user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat token")
	}
	refresh, err := service.IssueRefreshToken(c.UserContext(), ctrl.DB, user.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}

	return helper.JsonOK(c, "Login berhasil", dto.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         dto.FromUserModel(user),
	})
}

/* ===================== REFRESH ===================== */
// POST /api/auth/refresh-token
func (ctrl *AuthController) RefreshToken(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	user, access, refresh, err := service.RotateRefreshToken(c.UserContext(), ctrl.DB, req.RefreshToken)
	if err != nil {
		if errors.Is(err, service.ErrRefreshInvalid) {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui token")
	}

	return helper.JsonOK(c, "Token berhasil diperbarui", dto.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         dto.FromUserModel(user),
	})
}

/* ===================== LOGOUT ===================== */
// POST /api/auth/logout
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err == nil && req.RefreshToken != "" {
		_ = service.RevokeRefreshToken(c.UserContext(), ctrl.DB, req.RefreshToken)
	}
	c.ClearCookie("access_token")
	return helper.JsonOK(c, "Logout berhasil", nil)
}

/* ===================== ME ===================== */
// GET /api/u/me
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user usermodel.UserModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Akun tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil profil")
	}

	return helper.JsonOK(c, "Profil berhasil diambil", dto.FromUserModel(user))
}
