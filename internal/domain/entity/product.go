package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo. El stock y los precios reales
// viven en sus variaciones; los precios base son solo fallback de
// visualización y ordenamiento.
type Product struct {
	ID                string
	Name              string
	Category          string // etiqueta plana; borrar la categoría no limpia esta referencia
	Image             string
	BasePurchasePrice decimal.NullDecimal
	BaseSellingPrice  decimal.NullDecimal
}
