package inventory

import (
	"fmt"

	"github.com/jhoicas/muebleria-pos/internal/application/dto"
	"github.com/jhoicas/muebleria-pos/internal/domain"
	"github.com/jhoicas/muebleria-pos/internal/domain/entity"
)

// AdjustStock ajusta manualmente el stock de una variación. A diferencia del
// flujo de venta, aquí el resultado se recorta en cero: el ajuste manual es la
// herramienta para corregir negativos, no para crearlos.
func (uc *CatalogUseCase) AdjustStock(id string, req dto.AdjustStockRequest) (*entity.Variation, error) {
	prior, ok := uc.store.VariationByID(id)
	if !ok {
		return nil, fmt.Errorf("%w: variación %s", domain.ErrNotFound, id)
	}

	var next int
	switch req.Mode {
	case dto.StockAdjustAdd:
		next = prior.Stock + req.Value
	case dto.StockAdjustSet:
		next = req.Value
	default:
		return nil, fmt.Errorf("%w: modo de ajuste %q", domain.ErrInvalidInput, req.Mode)
	}
	if next < 0 {
		next = 0
	}

	updated := prior
	updated.Stock = next

	uc.store.ReplaceVariation(updated)
	if err := uc.variations.Update(&updated); err != nil {
		uc.store.ReplaceVariation(prior)
		uc.log.Error().Err(err).Str("variation_id", id).Msg("Error persistiendo ajuste de stock, estado local revertido")
		return nil, fmt.Errorf("error al ajustar stock: %w", err)
	}

	uc.log.Info().Str("variation_id", id).Int("stock_anterior", prior.Stock).Int("stock_nuevo", next).Msg("Stock ajustado")
	return &updated, nil
}
