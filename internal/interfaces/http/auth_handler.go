package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/muebleria-pos/internal/application/auth"
	"github.com/jhoicas/muebleria-pos/internal/application/dto"
	"github.com/jhoicas/muebleria-pos/internal/domain"
)

// AuthHandler maneja login y logout del operador único.
type AuthHandler struct {
	login *auth.LoginUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(login *auth.LoginUseCase) *AuthHandler {
	return &AuthHandler{login: login}
}

// Login autentica y abre la sesión; la respuesta incluye el token Bearer.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username y password son requeridos"})
	}
	out, err := h.login.Execute(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales incorrectas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Logout cierra la sesión vigente y apaga el feed de cambios.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.login.Logout(GetSessionID(c))
	return c.SendStatus(fiber.StatusNoContent)
}
