package authutils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const AdminRole = "admin"

// GetToken - токен администратора сайта для доступа к журналу внешнего API
func GetToken(subject, secret string, expire time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("не задан секрет для подписи токена")
	}
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": AdminRole,
		"exp":  time.Now().Add(expire).Unix(),
		"iat":  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func GetClaims(ctx *fiber.Ctx) jwt.MapClaims {
	token, ok := ctx.Locals("user").(*jwt.Token)
	if !ok {
		return jwt.MapClaims{}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return jwt.MapClaims{}
	}
	return claims
}

func GetSubject(ctx *fiber.Ctx) string {
	if sub, ok := GetClaims(ctx)["sub"].(string); ok {
		return sub
	}
	return ""
}

func GetRole(ctx *fiber.Ctx) string {
	if role, ok := GetClaims(ctx)["role"].(string); ok {
		return role
	}
	return ""
}
