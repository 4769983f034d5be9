package entity

import "github.com/shopspring/decimal"

// CartItem es una línea de transacción: snapshot inmutable de producto,
// variación, cantidad y tarifa capturado al momento de la venta o compra.
// Cambios de precio posteriores en la variación no afectan líneas históricas.
type CartItem struct {
	ProductID     string          `json:"productId"`
	VariationID   string          `json:"variationId"`
	ProductName   string          `json:"productName"`
	VariationName string          `json:"variationName"`
	Quantity      int             `json:"quantity"`
	Rate          decimal.Decimal `json:"rate"`
	Total         decimal.Decimal `json:"total"` // quantity * rate al momento de captura
}

// NewCartItem construye la línea calculando Total = Quantity * Rate.
func NewCartItem(productID, variationID, productName, variationName string, quantity int, rate decimal.Decimal) CartItem {
	return CartItem{
		ProductID:     productID,
		VariationID:   variationID,
		ProductName:   productName,
		VariationName: variationName,
		Quantity:      quantity,
		Rate:          rate,
		Total:         rate.Mul(decimal.NewFromInt(int64(quantity))),
	}
}
