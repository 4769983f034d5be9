package inventory

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/muebleria-pos/internal/application/dto"
	"github.com/jhoicas/muebleria-pos/internal/application/store"
	"github.com/jhoicas/muebleria-pos/internal/domain"
	"github.com/jhoicas/muebleria-pos/internal/domain/entity"
	"github.com/jhoicas/muebleria-pos/internal/domain/repository"
	"github.com/jhoicas/muebleria-pos/pkg/logger"
)

// CatalogUseCase gestiona altas y ediciones de productos y variaciones con el
// mismo protocolo de los committers: mutación optimista local, escritura
// remota, rollback compensatorio si la remota falla.
type CatalogUseCase struct {
	store      *store.Store
	products   repository.ProductRepository
	variations repository.VariationRepository
	log        *logger.Logger
}

// NewCatalogUseCase crea el caso de uso de catálogo.
func NewCatalogUseCase(st *store.Store, products repository.ProductRepository, variations repository.VariationRepository, log *logger.Logger) *CatalogUseCase {
	return &CatalogUseCase{store: st, products: products, variations: variations, log: log}
}

// AddProduct da de alta un producto junto con sus variaciones iniciales.
func (uc *CatalogUseCase) AddProduct(req dto.AddProductRequest) (*entity.Product, []entity.Variation, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, nil, fmt.Errorf("%w: el nombre del producto es obligatorio", domain.ErrInvalidInput)
	}
	for i, v := range req.Variations {
		if strings.TrimSpace(v.Name) == "" {
			return nil, nil, fmt.Errorf("%w: variación %d sin nombre", domain.ErrInvalidInput, i)
		}
		if v.Stock < 0 || v.PurchasePrice.IsNegative() || v.SellingPrice.IsNegative() {
			return nil, nil, fmt.Errorf("%w: variación %d con stock o precio negativo", domain.ErrInvalidInput, i)
		}
	}

	product := entity.Product{
		ID:                uuid.New().String(),
		Name:              name,
		Category:          strings.TrimSpace(req.Category),
		Image:             req.Image,
		BasePurchasePrice: toNullDecimal(req.BasePurchasePrice),
		BaseSellingPrice:  toNullDecimal(req.BaseSellingPrice),
	}
	vars := make([]entity.Variation, 0, len(req.Variations))
	for _, v := range req.Variations {
		vars = append(vars, entity.Variation{
			ID:            uuid.New().String(),
			ProductID:     product.ID,
			Name:          strings.TrimSpace(v.Name),
			Stock:         v.Stock,
			PurchasePrice: v.PurchasePrice,
			SellingPrice:  v.SellingPrice,
			Image:         v.Image,
			Color:         v.Color,
		})
	}

	uc.store.InsertProduct(product)
	uc.store.InsertVariations(vars)

	rollback := func() {
		for _, v := range vars {
			uc.store.RemoveVariation(v.ID)
		}
		uc.store.RemoveProduct(product.ID)
	}

	if err := uc.products.Create(&product); err != nil {
		rollback()
		uc.log.Error().Err(err).Str("product", name).Msg("Error persistiendo producto, estado local revertido")
		return nil, nil, fmt.Errorf("error al crear producto: %w", err)
	}
	if len(vars) > 0 {
		if err := uc.variations.CreateBatch(vars); err != nil {
			rollback()
			uc.log.Error().Err(err).Str("product_id", product.ID).Msg("Error persistiendo variaciones, alta revertida")
			return nil, nil, fmt.Errorf("error al crear variaciones: %w", err)
		}
	}

	uc.log.Info().Str("product_id", product.ID).Str("name", name).Int("variations", len(vars)).Msg("Producto creado")
	return &product, vars, nil
}

// UpdateProduct edita campos del producto. Punteros nil no tocan lo vigente.
func (uc *CatalogUseCase) UpdateProduct(id string, req dto.UpdateProductRequest) (*entity.Product, error) {
	prior, ok := uc.store.ProductByID(id)
	if !ok {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
	}

	updated := prior
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, fmt.Errorf("%w: el nombre del producto es obligatorio", domain.ErrInvalidInput)
		}
		updated.Name = strings.TrimSpace(*req.Name)
	}
	if req.Category != nil {
		updated.Category = strings.TrimSpace(*req.Category)
	}
	if req.Image != nil {
		updated.Image = *req.Image
	}
	if req.BasePurchasePrice != nil {
		updated.BasePurchasePrice = decimal.NullDecimal{Decimal: *req.BasePurchasePrice, Valid: true}
	}
	if req.BaseSellingPrice != nil {
		updated.BaseSellingPrice = decimal.NullDecimal{Decimal: *req.BaseSellingPrice, Valid: true}
	}

	uc.store.ReplaceProduct(updated)
	if err := uc.products.Update(&updated); err != nil {
		uc.store.ReplaceProduct(prior)
		uc.log.Error().Err(err).Str("product_id", id).Msg("Error actualizando producto, estado local revertido")
		return nil, fmt.Errorf("error al actualizar producto: %w", err)
	}
	return &updated, nil
}

// AddVariation da de alta una variación sobre un producto existente.
func (uc *CatalogUseCase) AddVariation(productID string, req dto.AddVariationRequest) (*entity.Variation, error) {
	if _, ok := uc.store.ProductByID(productID); !ok {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, productID)
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: la variación necesita nombre", domain.ErrInvalidInput)
	}
	if req.Stock < 0 || req.PurchasePrice.IsNegative() || req.SellingPrice.IsNegative() {
		return nil, fmt.Errorf("%w: stock o precio negativo", domain.ErrInvalidInput)
	}

	variation := entity.Variation{
		ID:            uuid.New().String(),
		ProductID:     productID,
		Name:          strings.TrimSpace(req.Name),
		Stock:         req.Stock,
		PurchasePrice: req.PurchasePrice,
		SellingPrice:  req.SellingPrice,
		Image:         req.Image,
		Color:         req.Color,
	}

	uc.store.InsertVariation(variation)
	if err := uc.variations.Create(&variation); err != nil {
		uc.store.RemoveVariation(variation.ID)
		uc.log.Error().Err(err).Str("product_id", productID).Msg("Error persistiendo variación, estado local revertido")
		return nil, fmt.Errorf("error al crear variación: %w", err)
	}
	return &variation, nil
}

// UpdateVariation edita campos de una variación (no el stock: eso va por
// AdjustStock o por los flujos de venta/compra).
func (uc *CatalogUseCase) UpdateVariation(id string, req dto.UpdateVariationRequest) (*entity.Variation, error) {
	prior, ok := uc.store.VariationByID(id)
	if !ok {
		return nil, fmt.Errorf("%w: variación %s", domain.ErrNotFound, id)
	}

	updated := prior
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, fmt.Errorf("%w: la variación necesita nombre", domain.ErrInvalidInput)
		}
		updated.Name = strings.TrimSpace(*req.Name)
	}
	if req.PurchasePrice != nil {
		if req.PurchasePrice.IsNegative() {
			return nil, fmt.Errorf("%w: precio de compra negativo", domain.ErrInvalidInput)
		}
		updated.PurchasePrice = *req.PurchasePrice
	}
	if req.SellingPrice != nil {
		if req.SellingPrice.IsNegative() {
			return nil, fmt.Errorf("%w: precio de venta negativo", domain.ErrInvalidInput)
		}
		updated.SellingPrice = *req.SellingPrice
	}
	if req.Image != nil {
		updated.Image = *req.Image
	}
	if req.Color != nil {
		updated.Color = *req.Color
	}

	uc.store.ReplaceVariation(updated)
	if err := uc.variations.Update(&updated); err != nil {
		uc.store.ReplaceVariation(prior)
		uc.log.Error().Err(err).Str("variation_id", id).Msg("Error actualizando variación, estado local revertido")
		return nil, fmt.Errorf("error al actualizar variación: %w", err)
	}
	return &updated, nil
}

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}
