package entity

import "github.com/shopspring/decimal"

// Variation es la unidad real de inventario: una configuración vendible de un
// producto (medida/calidad/color) con su propio stock y precios.
type Variation struct {
	ID            string
	ProductID     string
	Name          string // ej. "25mm (1 inch)", "High Back (Black)"
	Stock         int
	PurchasePrice decimal.Decimal
	SellingPrice  decimal.Decimal
	Image         string // opcional
	Color         string // opcional, hex o nombre
}
