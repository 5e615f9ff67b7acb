// internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"mathify_backend/internals/configs"
	studentModel "mathify_backend/internals/features/tutoring/students/model"
	authModel "mathify_backend/internals/features/users/auth/model"
	helper "mathify_backend/internals/helpers"
)

type googleLoginRequest struct {
	IDToken string `json:"id_token"`
}

// ========================== LOGIN GOOGLE ==========================
// POST /api/auth/login-google
//
// Students are enrolled by the admin first; login only matches an
// existing active row by e-mail.
func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var req googleLoginRequest
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.IDToken) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id_token is required")
	}
	if configs.GoogleClientID == "" {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Google login is not configured")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "invalid Google token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "invalid Google token")
	}
	email := strings.ToLower(strings.TrimSpace(claimSet.Email))
	if email == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Google token has no e-mail")
	}

	var s studentModel.StudentModel
	if err := db.First(&s, "student_email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusForbidden, "e-mail is not enrolled")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if !s.StudentIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "account has been deactivated")
	}

	access, err := issueTokenPair(db, c, &s)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to issue tokens")
	}
	return helper.JsonOK(c, "login success", fiber.Map{
		"access_token": access,
		"user": fiber.Map{
			"id":       s.StudentID,
			"name":     s.StudentName,
			"email":    s.StudentEmail,
			"role":     roleOf(&s),
			"is_admin": s.StudentIsAdmin,
		},
	})
}

// ========================== LOGOUT ==========================
// POST /api/auth/logout
//
// Access tokens are stateless, so logout blacklists the presented token
// until its natural expiry and revokes the refresh cookie.
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	auth := strings.TrimSpace(c.Get("Authorization"))
	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return helper.JsonError(c, fiber.StatusUnauthorized, "no token provided")
	}
	tokenString := strings.Trim(fields[1], "\"'")

	expiredAt := nowUTC().Add(accessTTL)
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(exp), 0).UTC()
		}
	}

	if err := db.Create(&authModel.TokenBlacklist{
		Token:     tokenString,
		ExpiredAt: expiredAt,
	}).Error; err != nil && !strings.Contains(err.Error(), "duplicate key") {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	// revoke the refresh token for this session, if presented
	if refreshCookie := strings.TrimSpace(c.Cookies("refresh_token")); refreshCookie != "" {
		hash := computeRefreshHash(refreshCookie, configs.JWTRefreshSecret)
		now := nowUTC()
		db.Model(&authModel.RefreshToken{}).
			Where("token_hash = ? AND revoked_at IS NULL", hash).
			Update("revoked_at", now)
	}
	c.ClearCookie("refresh_token")

	return helper.JsonOK(c, "logged out", nil)
}
