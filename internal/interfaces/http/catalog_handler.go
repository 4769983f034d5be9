package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/muebleria-pos/internal/application/dto"
	"github.com/jhoicas/muebleria-pos/internal/application/inventory"
	"github.com/jhoicas/muebleria-pos/internal/application/store"
	"github.com/jhoicas/muebleria-pos/internal/domain"
)

// CatalogHandler maneja productos, variaciones y ajustes de stock.
type CatalogHandler struct {
	catalog *inventory.CatalogUseCase
	store   *store.Store
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(catalog *inventory.CatalogUseCase, st *store.Store) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, store: st}
}

// ListProducts devuelve el catálogo con variaciones anidadas.
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	snap := h.store.Snapshot()
	out := make([]dto.ProductResponse, 0, len(snap.Products))
	for i := range snap.Products {
		out = append(out, *dto.ToProductResponse(&snap.Products[i], snap.Variations))
	}
	return c.JSON(out)
}

// CreateProduct da de alta un producto con sus variaciones iniciales.
func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	var in dto.AddProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	product, vars, err := h.catalog.AddProduct(in)
	if err != nil {
		return writeUseCaseError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToProductResponse(product, vars))
}

// UpdateProduct edita campos del producto indicado.
func (h *CatalogHandler) UpdateProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	product, err := h.catalog.UpdateProduct(id, in)
	if err != nil {
		return writeUseCaseError(c, err)
	}
	return c.JSON(dto.ToProductResponse(product, h.store.VariationsByProduct(id)))
}

// CreateVariation agrega una variación a un producto existente.
func (h *CatalogHandler) CreateVariation(c *fiber.Ctx) error {
	productID := c.Params("id")
	var in dto.AddVariationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	variation, err := h.catalog.AddVariation(productID, in)
	if err != nil {
		return writeUseCaseError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToVariationResponse(variation))
}

// UpdateVariation edita campos de la variación indicada.
func (h *CatalogHandler) UpdateVariation(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateVariationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	variation, err := h.catalog.UpdateVariation(id, in)
	if err != nil {
		return writeUseCaseError(c, err)
	}
	return c.JSON(dto.ToVariationResponse(variation))
}

// AdjustStock ajusta manualmente el stock de la variación (ADD o SET).
func (h *CatalogHandler) AdjustStock(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	variation, err := h.catalog.AdjustStock(id, in)
	if err != nil {
		return writeUseCaseError(c, err)
	}
	return c.JSON(dto.ToVariationResponse(variation))
}

// writeUseCaseError traduce los errores sentinela del dominio a HTTP.
func writeUseCaseError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrEmptyCart):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
