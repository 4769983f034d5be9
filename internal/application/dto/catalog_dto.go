package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/muebleria-pos/internal/domain/entity"
)

// AddVariationRequest variación nueva, suelta o dentro de un producto nuevo.
type AddVariationRequest struct {
	Name          string          `json:"name"`
	Stock         int             `json:"stock"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SellingPrice  decimal.Decimal `json:"sellingPrice"`
	Image         string          `json:"image,omitempty"`
	Color         string          `json:"color,omitempty"`
}

// AddProductRequest producto nuevo con sus variaciones iniciales.
type AddProductRequest struct {
	Name              string                `json:"name"`
	Category          string                `json:"category"`
	Image             string                `json:"image,omitempty"`
	BasePurchasePrice *decimal.Decimal      `json:"basePurchasePrice,omitempty"`
	BaseSellingPrice  *decimal.Decimal      `json:"baseSellingPrice,omitempty"`
	Variations        []AddVariationRequest `json:"variations"`
}

// UpdateProductRequest campos editables de un producto. Los punteros en nil
// no tocan el valor vigente.
type UpdateProductRequest struct {
	Name              *string          `json:"name,omitempty"`
	Category          *string          `json:"category,omitempty"`
	Image             *string          `json:"image,omitempty"`
	BasePurchasePrice *decimal.Decimal `json:"basePurchasePrice,omitempty"`
	BaseSellingPrice  *decimal.Decimal `json:"baseSellingPrice,omitempty"`
}

// UpdateVariationRequest campos editables de una variación.
type UpdateVariationRequest struct {
	Name          *string          `json:"name,omitempty"`
	PurchasePrice *decimal.Decimal `json:"purchasePrice,omitempty"`
	SellingPrice  *decimal.Decimal `json:"sellingPrice,omitempty"`
	Image         *string          `json:"image,omitempty"`
	Color         *string          `json:"color,omitempty"`
}

// Modos de ajuste manual de stock.
const (
	StockAdjustAdd = "ADD" // suma value (puede ser negativo) al stock vigente
	StockAdjustSet = "SET" // fija el stock en value
)

// AdjustStockRequest ajuste manual de stock de una variación. El resultado
// nunca baja de cero.
type AdjustStockRequest struct {
	Mode  string `json:"mode"`
	Value int    `json:"value"`
}

// CategoryRequest alta o baja de una categoría por nombre.
type CategoryRequest struct {
	Name string `json:"name"`
}

// EditCategoriesRequest lista completa de categorías editada en bloque.
type EditCategoriesRequest struct {
	Names []string `json:"names"`
}

// ProductResponse producto con sus variaciones para el front.
type ProductResponse struct {
	ID                string              `json:"id"`
	Name              string              `json:"name"`
	Category          string              `json:"category"`
	Image             string              `json:"image,omitempty"`
	BasePurchasePrice *decimal.Decimal    `json:"basePurchasePrice,omitempty"`
	BaseSellingPrice  *decimal.Decimal    `json:"baseSellingPrice,omitempty"`
	Variations        []VariationResponse `json:"variations"`
}

// VariationResponse variación para el front.
type VariationResponse struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"productId"`
	Name          string          `json:"name"`
	Stock         int             `json:"stock"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SellingPrice  decimal.Decimal `json:"sellingPrice"`
	Image         string          `json:"image,omitempty"`
	Color         string          `json:"color,omitempty"`
}

// ToProductResponse arma la respuesta anidando las variaciones del producto.
func ToProductResponse(p *entity.Product, variations []entity.Variation) *ProductResponse {
	if p == nil {
		return nil
	}
	resp := &ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		Category:   p.Category,
		Image:      p.Image,
		Variations: make([]VariationResponse, 0, len(variations)),
	}
	if p.BasePurchasePrice.Valid {
		v := p.BasePurchasePrice.Decimal
		resp.BasePurchasePrice = &v
	}
	if p.BaseSellingPrice.Valid {
		v := p.BaseSellingPrice.Decimal
		resp.BaseSellingPrice = &v
	}
	for _, vr := range variations {
		if vr.ProductID != p.ID {
			continue
		}
		resp.Variations = append(resp.Variations, ToVariationResponse(&vr))
	}
	return resp
}

// ToVariationResponse mapea la entidad a su respuesta HTTP.
func ToVariationResponse(v *entity.Variation) VariationResponse {
	return VariationResponse{
		ID:            v.ID,
		ProductID:     v.ProductID,
		Name:          v.Name,
		Stock:         v.Stock,
		PurchasePrice: v.PurchasePrice,
		SellingPrice:  v.SellingPrice,
		Image:         v.Image,
		Color:         v.Color,
	}
}
