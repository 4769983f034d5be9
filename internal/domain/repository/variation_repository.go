package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/muebleria-pos/internal/domain/entity"
)

// VariationRepository define el puerto de persistencia para Variation (DIP).
type VariationRepository interface {
	Create(v *entity.Variation) error
	// CreateBatch inserta las variaciones iniciales de un producto nuevo.
	CreateBatch(vars []entity.Variation) error
	// Update reemplaza el conjunto completo de campos mapeados por id.
	Update(v *entity.Variation) error
	// UpdateStock escribe solo la columna stock (flujo de venta).
	UpdateStock(id string, stock int) error
	// UpdateStockAndPrice escribe stock y purchase_price (flujo de compra:
	// el último precio de compra gana).
	UpdateStockAndPrice(id string, stock int, purchasePrice decimal.Decimal) error
	List() ([]entity.Variation, error)
}
