package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/muebleria-pos/internal/application/auth"
	"github.com/jhoicas/muebleria-pos/internal/application/dto"
	"github.com/jhoicas/muebleria-pos/internal/application/store"
)

// StateHandler expone el estado local completo y su recarga manual.
type StateHandler struct {
	store *store.Store
	boot  auth.Bootstrapper
}

// NewStateHandler construye el handler.
func NewStateHandler(st *store.Store, boot auth.Bootstrapper) *StateHandler {
	return &StateHandler{store: st, boot: boot}
}

// Get devuelve el snapshot vigente del estado local.
func (h *StateHandler) Get(c *fiber.Ctx) error {
	return c.JSON(dto.ToStateResponse(h.store.Snapshot()))
}

// Reload relee todas las colecciones del remoto y sustituye el estado local.
// Es la válvula de escape si el feed perdió eventos.
func (h *StateHandler) Reload(c *fiber.Ctx) error {
	snap, err := h.boot.LoadAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "REMOTE_UNAVAILABLE", Message: err.Error()})
	}
	h.store.ReplaceAll(snap)
	return c.JSON(dto.ToStateResponse(h.store.Snapshot()))
}
