package middleware

import (
	"github.com/gofiber/fiber/v2"
	authutils "site-backend/lib/utils/auth-utils"
	apimodels "site-backend/models/api"
)

func AdminRoleRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if authutils.GetRole(ctx) != authutils.AdminRole {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция недоступна"))
		}
		return ctx.Next()
	}
}
