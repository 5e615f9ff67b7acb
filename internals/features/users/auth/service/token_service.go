// internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mathify_backend/internals/configs"
	"mathify_backend/internals/constants"
	studentModel "mathify_backend/internals/features/tutoring/students/model"
	authModel "mathify_backend/internals/features/users/auth/model"
	helper "mathify_backend/internals/helpers"
)

const (
	accessTTL  = 2 * time.Hour
	refreshTTL = 7 * 24 * time.Hour
)

func nowUTC() time.Time { return time.Now().UTC() }

func roleOf(s *studentModel.StudentModel) string {
	if s.StudentIsAdmin {
		return constants.RoleAdmin
	}
	return constants.RoleStudent
}

func buildAccessClaims(s *studentModel.StudentModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"id":        s.StudentID.String(),
		"user_name": s.StudentName,
		"role":      roleOf(s),
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTL).Unix(),
	}
}

func buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTL).Unix(),
	}
}

func signHS256(claims jwt.MapClaims, secret string) (string, error) {
	if secret == "" {
		return "", errors.New("missing signing secret")
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// computeRefreshHash: HMAC-SHA256 of the raw refresh JWT, keyed with the
// refresh secret. Only this hash touches the database.
func computeRefreshHash(raw, secret string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(raw))
	return mac.Sum(nil)
}

func storeRefreshToken(db *gorm.DB, c *fiber.Ctx, userID uuid.UUID, raw string, now time.Time) error {
	ua := c.Get("User-Agent")
	ip := c.IP()
	return db.Create(&authModel.RefreshToken{
		UserID:    userID,
		TokenHash: computeRefreshHash(raw, configs.JWTRefreshSecret),
		ExpiresAt: now.Add(refreshTTL),
		UserAgent: &ua,
		IP:        &ip,
	}).Error
}

func setRefreshCookie(c *fiber.Ctx, raw string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    raw,
		Expires:  now.Add(refreshTTL),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
	})
}

func issueTokenPair(db *gorm.DB, c *fiber.Ctx, s *studentModel.StudentModel) (string, error) {
	now := nowUTC()

	access, err := signHS256(buildAccessClaims(s, now), configs.JWTSecret)
	if err != nil {
		return "", err
	}
	refresh, err := signHS256(buildRefreshClaims(s.StudentID, now), configs.JWTRefreshSecret)
	if err != nil {
		return "", err
	}
	if err := storeRefreshToken(db, c, s.StudentID, refresh, now); err != nil {
		return "", err
	}
	setRefreshCookie(c, refresh, now)
	return access, nil
}

// ========================== REFRESH TOKEN ==========================
// POST /api/auth/refresh-token
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshCookie := strings.TrimSpace(c.Cookies("refresh_token"))
	if refreshCookie == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "refresh token missing")
	}

	secret := configs.JWTRefreshSecret
	tok, err := jwt.Parse(refreshCookie, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return helper.JsonError(c, fiber.StatusUnauthorized, "refresh token invalid")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "refresh token invalid")
	}

	// the presented token must still exist, unrevoked, in the store
	hash := computeRefreshHash(refreshCookie, secret)
	var rt authModel.RefreshToken
	if err := db.
		Where("token_hash = ? AND revoked_at IS NULL AND expires_at > NOW()", hash).
		First(&rt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "refresh token unknown")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	var s studentModel.StudentModel
	if err := db.First(&s, "student_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "user not found")
	}
	if !s.StudentIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "account has been deactivated")
	}

	// ROTATE: revoke the presented token before issuing a new pair
	now := nowUTC()
	if err := db.Model(&authModel.RefreshToken{}).
		Where("id = ?", rt.ID).
		Update("revoked_at", now).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	access, err := issueTokenPair(db, c, &s)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to issue tokens")
	}
	return helper.JsonOK(c, "token refreshed", fiber.Map{
		"access_token": access,
	})
}
