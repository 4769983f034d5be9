package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/muebleria-pos/internal/application/dto"
	"github.com/jhoicas/muebleria-pos/internal/application/inventory"
	"github.com/jhoicas/muebleria-pos/internal/application/store"
)

// CategoryHandler maneja la lista plana de categorías.
type CategoryHandler struct {
	categories *inventory.CategoryUseCase
	store      *store.Store
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(categories *inventory.CategoryUseCase, st *store.Store) *CategoryHandler {
	return &CategoryHandler{categories: categories, store: st}
}

// List devuelve los nombres de categoría vigentes.
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.store.Categories())
}

// Create agrega una categoría por nombre.
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.categories.Add(in.Name); err != nil {
		return writeUseCaseError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(h.store.Categories())
}

// Delete quita la categoría indicada por nombre. El nombre viaja en el path,
// así que llega URL-escapado ("Sofa%20Sets").
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		name = c.Params("name")
	}
	if err := h.categories.Remove(name); err != nil {
		return writeUseCaseError(c, err)
	}
	return c.JSON(h.store.Categories())
}

// EditAll recibe la lista completa editada y aplica la diferencia contra la
// vigente.
func (h *CategoryHandler) EditAll(c *fiber.Ctx) error {
	var in dto.EditCategoriesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.categories.EditAll(in.Names); err != nil {
		return writeUseCaseError(c, err)
	}
	return c.JSON(h.store.Categories())
}
