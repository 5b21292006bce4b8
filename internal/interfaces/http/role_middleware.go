package http

import (
	"slices"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stonecrusher-api/internal/application/dto"
)

// RequireRole devuelve un middleware Fiber que solo deja pasar a los roles indicados.
// Debe usarse DESPUÉS de AuthMiddleware (necesita LocalRole).
//
// Comportamiento:
//   - 401 Unauthorized → no hay rol en el contexto (falta AuthMiddleware o el token no lo trae).
//   - 403 Forbidden    → el rol del token no está en la lista.
//
// El rol es el del access token: un cambio de rol en la base se refleja recién en el próximo refresh.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "INVALID_TOKEN",
				Message: "No role in token",
			})
		}
		if !slices.Contains(roles, role) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "Access denied: insufficient role",
			})
		}
		return c.Next()
	}
}
