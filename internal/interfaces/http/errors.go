package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stonecrusher-api/internal/application/dto"
	"github.com/jhoicas/stonecrusher-api/internal/domain"
)

// errorMapping traduce los errores de dominio a status y código HTTP.
var errorMapping = []struct {
	kind   error
	status int
	code   string
}{
	{domain.ErrValidation, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrDuplicate, fiber.StatusBadRequest, "DUPLICATE"},
	{domain.ErrInsufficientStock, fiber.StatusNotFound, "INSUFFICIENT_STOCK"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrUserNotFound, fiber.StatusNotFound, "USER_NOT_FOUND"},
	{domain.ErrTokenExpired, fiber.StatusUnauthorized, "TOKEN_EXPIRED"},
	{domain.ErrUnauthenticated, fiber.StatusUnauthorized, "INVALID_TOKEN"},
	{domain.ErrInvalidCredentials, fiber.StatusUnauthorized, "INVALID_CREDENTIALS"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
}

// writeError responde el error con el formato {code, message}. Lo no clasificado es 500.
func writeError(c *fiber.Ctx, err error) error {
	for _, m := range errorMapping {
		if errors.Is(err, m.kind) {
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: domain.Message(err)})
		}
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code:    "INTERNAL",
		Message: "Server error",
		Error:   err.Error(),
	})
}

// badBody respuesta para cuerpos que no se pueden decodificar.
func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Invalid request body"})
}
