package billing

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/muebleria-pos/internal/application/dto"
	"github.com/jhoicas/muebleria-pos/internal/application/store"
	"github.com/jhoicas/muebleria-pos/internal/domain"
	"github.com/jhoicas/muebleria-pos/internal/domain/entity"
	"github.com/jhoicas/muebleria-pos/internal/domain/repository"
	"github.com/jhoicas/muebleria-pos/pkg/logger"
)

// CommitPurchaseUseCase confirma una compra a proveedor: entrada de stock y
// actualización del precio de compra (el último precio pagado gana).
type CommitPurchaseUseCase struct {
	store      *store.Store
	purchases  repository.PurchaseRepository
	variations repository.VariationRepository
	log        *logger.Logger
}

// NewCommitPurchaseUseCase crea el caso de uso de compra.
func NewCommitPurchaseUseCase(st *store.Store, purchases repository.PurchaseRepository, variations repository.VariationRepository, log *logger.Logger) *CommitPurchaseUseCase {
	return &CommitPurchaseUseCase{store: st, purchases: purchases, variations: variations, log: log}
}

// Execute valida el carrito, suma stock y sobreescribe el precio de compra de
// cada variación conocida, inserta la compra en el estado local y persiste en
// remoto con rollback compensatorio ante fallo.
func (uc *CommitPurchaseUseCase) Execute(req dto.CreatePurchaseRequest) (*entity.Purchase, error) {
	if !entity.ValidPaymentMode(req.PaymentMode) {
		return nil, fmt.Errorf("%w: modo de pago %q", domain.ErrInvalidInput, req.PaymentMode)
	}
	if req.AmountPaid.IsNegative() {
		return nil, fmt.Errorf("%w: monto pagado no puede ser negativo", domain.ErrInvalidInput)
	}

	lines, known, total, err := buildCart(uc.store, req.Items)
	if err != nil {
		return nil, err
	}

	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}

	purchase := entity.Purchase{
		ID:            uuid.New().String(),
		SupplierName:  req.SupplierName,
		Date:          date,
		Items:         lines,
		TotalAmount:   total,
		AmountPaid:    req.AmountPaid,
		AmountPending: entity.PendingAmount(total, req.AmountPaid),
		PaymentMode:   req.PaymentMode,
	}

	// Igual que en la venta: el stock destino de cada línea se fija durante
	// la mutación optimista y es lo que se escribe en remoto.
	prior := make([]entity.Variation, 0, len(lines))
	targets := make([]int, len(lines))
	seen := make(map[string]bool, len(lines))
	for i, line := range lines {
		if !known[i] {
			continue
		}
		v, ok := uc.store.VariationByID(line.VariationID)
		if !ok {
			continue
		}
		if !seen[line.VariationID] {
			seen[line.VariationID] = true
			prior = append(prior, v)
		}
		targets[i] = v.Stock + line.Quantity
		rate := line.Rate
		uc.store.MergeVariation(line.VariationID, func(dst *entity.Variation) {
			dst.Stock += line.Quantity
			dst.PurchasePrice = rate
		})
	}
	uc.store.InsertPurchase(purchase)

	rollback := func() {
		uc.store.RemovePurchase(purchase.ID)
		for _, v := range prior {
			uc.store.ReplaceVariation(v)
		}
	}

	if err := uc.purchases.Create(&purchase); err != nil {
		rollback()
		uc.log.Error().Err(err).Str("purchase_id", purchase.ID).Msg("Error persistiendo compra, estado local revertido")
		return nil, fmt.Errorf("error al persistir compra: %w", err)
	}

	for i, line := range lines {
		if !known[i] {
			continue
		}
		if !seen[line.VariationID] {
			continue
		}
		if err := uc.variations.UpdateStockAndPrice(line.VariationID, targets[i], line.Rate); err != nil {
			rollback()
			uc.removeRemotePurchase(purchase.ID)
			uc.restoreRemoteStock(prior)
			uc.log.Error().Err(err).Str("purchase_id", purchase.ID).Str("variation_id", line.VariationID).
				Msg("Error actualizando stock remoto, compra revertida")
			return nil, fmt.Errorf("error al actualizar stock de variación %s: %w", line.VariationID, err)
		}
	}

	uc.log.Info().Str("purchase_id", purchase.ID).Str("supplier", purchase.SupplierName).
		Str("total", purchase.TotalAmount.String()).Msg("Compra confirmada")
	return &purchase, nil
}

// removeRemotePurchase quita la fila ya insertada cuando el commit quedó a
// medias, para que el eco del feed no la reinserte. Mejor esfuerzo.
func (uc *CommitPurchaseUseCase) removeRemotePurchase(id string) {
	if err := uc.purchases.Delete(id); err != nil {
		uc.log.Warn().Err(err).Str("purchase_id", id).Msg("No se pudo quitar la compra remota huérfana")
	}
}

func (uc *CommitPurchaseUseCase) restoreRemoteStock(prior []entity.Variation) {
	for _, v := range prior {
		if err := uc.variations.UpdateStockAndPrice(v.ID, v.Stock, v.PurchasePrice); err != nil {
			uc.log.Warn().Err(err).Str("variation_id", v.ID).Msg("No se pudo restaurar stock remoto")
		}
	}
}
