package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/muebleria-pos/internal/application/auth"
	"github.com/jhoicas/muebleria-pos/internal/application/dto"
	"github.com/jhoicas/muebleria-pos/pkg/jwt"
)

// Locals keys para SessionID y Username en Fiber.
const (
	LocalSessionID = "session_id"
	LocalUsername  = "username"
)

// AuthMiddleware valida el Bearer Token JWT y que la sesión siga vigente.
// Cada petición autenticada cuenta como actividad: el Touch reinicia el reloj
// de inactividad del watchdog.
func AuthMiddleware(jwtSecret string, sessions *auth.SessionManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		sessionID, username, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		if !sessions.Touch(sessionID) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_EXPIRED", Message: "sesión cerrada o expirada por inactividad"})
		}
		c.Locals(LocalSessionID, sessionID)
		c.Locals(LocalUsername, username)
		return c.Next()
	}
}

// GetSessionID devuelve el SessionID del contexto (después del middleware de auth).
func GetSessionID(c *fiber.Ctx) string {
	v := c.Locals(LocalSessionID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
