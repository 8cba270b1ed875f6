// file: internals/features/users/auth/service/token_service.go
package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	authmodel "schoolku_backend/internals/features/users/auth/model"
	usermodel "schoolku_backend/internals/features/users/user/model"
)

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 30 * 24 * time.Hour
)

var (
	ErrRefreshInvalid = errors.New("refresh token tidak valid atau sudah kedaluwarsa")
)

// GenerateAccessToken membuat JWT HS256 dengan claim yang dibaca AuthJWT
// (id, role, full_name).
func GenerateAccessToken(u usermodel.UserModel) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":        u.ID.String(),
		"role":      u.Role,
		"full_name": u.FullName,
		"iat":       now.Unix(),
		"exp":       now.Add(AccessTokenTTL).Unix(),
		"typ":       "access",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

func hashRefreshToken(raw string) []byte {
	sum := sha256.Sum256([]byte(raw))
	return sum[:]
}

// IssueRefreshToken membuat token opaque acak, menyimpan hash-nya, dan
// mengembalikan token asli (sekali ini saja terlihat).
func IssueRefreshToken(ctx context.Context, db *gorm.DB, userID uuid.UUID) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	raw := base64.RawURLEncoding.EncodeToString(buf)

	row := authmodel.RefreshTokenModel{
		UserID:    userID,
		TokenHash: hashRefreshToken(raw),
		ExpiresAt: time.Now().Add(RefreshTokenTTL),
	}
	if err := db.WithContext(ctx).Create(&row).Error; err != nil {
		return "", err
	}
	return raw, nil
}

// RotateRefreshToken memvalidasi token lama, menghapusnya, lalu menerbitkan
// pasangan access+refresh baru. Token lama tidak bisa dipakai dua kali.
func RotateRefreshToken(ctx context.Context, db *gorm.DB, raw string) (usermodel.UserModel, string, string, error) {
	var stored authmodel.RefreshTokenModel
	if err := db.WithContext(ctx).
		First(&stored, "token_hash = ?", hashRefreshToken(raw)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usermodel.UserModel{}, "", "", ErrRefreshInvalid
		}
		return usermodel.UserModel{}, "", "", err
	}
	if time.Now().After(stored.ExpiresAt) {
		_ = db.WithContext(ctx).Delete(&stored).Error
		return usermodel.UserModel{}, "", "", ErrRefreshInvalid
	}

	var user usermodel.UserModel
	if err := db.WithContext(ctx).
		First(&user, "id = ? AND is_active = ?", stored.UserID, true).Error; err != nil {
		return usermodel.UserModel{}, "", "", ErrRefreshInvalid
	}

	// rotasi: baris lama mati begitu dipakai
	if err := db.WithContext(ctx).Delete(&stored).Error; err != nil {
		return usermodel.UserModel{}, "", "", err
	}

	access, err := GenerateAccessToken(user)
	if err != nil {
		return usermodel.UserModel{}, "", "", err
	}
	refresh, err := IssueRefreshToken(ctx, db, user.ID)
	if err != nil {
		return usermodel.UserModel{}, "", "", err
	}
	return user, access, refresh, nil
}

// RevokeRefreshToken untuk logout; token yang tidak ketemu dianggap sudah mati.
func RevokeRefreshToken(ctx context.Context, db *gorm.DB, raw string) error {
	return db.WithContext(ctx).
		Delete(&authmodel.RefreshTokenModel{}, "token_hash = ?", hashRefreshToken(raw)).Error
}
