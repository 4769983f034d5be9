package billing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/muebleria-pos/internal/application/dto"
	"github.com/jhoicas/muebleria-pos/internal/application/store"
	"github.com/jhoicas/muebleria-pos/internal/domain"
	"github.com/jhoicas/muebleria-pos/internal/domain/entity"
)

// buildCart valida las líneas del carrito y las resuelve contra el estado
// local: nombres de producto y variación se capturan como snapshot inmutable.
// Una variación desconocida no invalida la línea; queda con nombres vacíos y
// sin mutación de stock asociada (conocido[i] = false).
func buildCart(st *store.Store, items []dto.CartItemRequest) ([]entity.CartItem, []bool, decimal.Decimal, error) {
	if len(items) == 0 {
		return nil, nil, decimal.Zero, domain.ErrEmptyCart
	}

	lines := make([]entity.CartItem, 0, len(items))
	known := make([]bool, 0, len(items))
	total := decimal.Zero

	for i, it := range items {
		if it.Quantity <= 0 {
			return nil, nil, decimal.Zero, fmt.Errorf("%w: línea %d con cantidad %d", domain.ErrInvalidInput, i, it.Quantity)
		}
		if it.Rate.IsNegative() {
			return nil, nil, decimal.Zero, fmt.Errorf("%w: línea %d con tarifa negativa", domain.ErrInvalidInput, i)
		}

		var productID, productName, variationName string
		variation, ok := st.VariationByID(it.VariationID)
		if ok {
			productID = variation.ProductID
			variationName = variation.Name
			if p, found := st.ProductByID(variation.ProductID); found {
				productName = p.Name
			}
		}

		line := entity.NewCartItem(productID, it.VariationID, productName, variationName, it.Quantity, it.Rate)
		lines = append(lines, line)
		known = append(known, ok)
		total = total.Add(line.Total)
	}

	return lines, known, total, nil
}
