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

// CommitSaleUseCase confirma una venta: mutación optimista del estado local
// seguida de escritura remota, con rollback compensatorio si la remota falla.
type CommitSaleUseCase struct {
	store      *store.Store
	bills      repository.BillRepository
	variations repository.VariationRepository
	log        *logger.Logger
}

// NewCommitSaleUseCase crea el caso de uso de venta.
func NewCommitSaleUseCase(st *store.Store, bills repository.BillRepository, variations repository.VariationRepository, log *logger.Logger) *CommitSaleUseCase {
	return &CommitSaleUseCase{store: st, bills: bills, variations: variations, log: log}
}

// Execute valida el carrito, descuenta stock localmente (sin clamping: el
// stock de venta puede quedar negativo y se corrige con un ajuste manual),
// inserta la venta en el estado local y luego persiste en remoto. Si cualquier
// escritura remota falla, restaura las variaciones previas, quita la venta del
// estado local (y del remoto si ya se había insertado) y devuelve el error.
func (uc *CommitSaleUseCase) Execute(req dto.CreateBillRequest) (*entity.Bill, error) {
	if !entity.ValidPaymentMode(req.PaymentMode) {
		return nil, fmt.Errorf("%w: modo de pago %q", domain.ErrInvalidInput, req.PaymentMode)
	}
	if req.Discount.IsNegative() || req.AmountReceived.IsNegative() {
		return nil, fmt.Errorf("%w: descuento y monto recibido no pueden ser negativos", domain.ErrInvalidInput)
	}

	lines, known, total, err := buildCart(uc.store, req.Items)
	if err != nil {
		return nil, err
	}

	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}

	final := entity.FinalAfterDiscount(total, req.Discount)
	bill := entity.Bill{
		ID:             uuid.New().String(),
		CustomerName:   req.CustomerName,
		ContactNo:      req.ContactNo,
		Date:           date,
		Items:          lines,
		TotalAmount:    total,
		Discount:       req.Discount,
		FinalAmount:    final,
		AmountReceived: req.AmountReceived,
		AmountPending:  entity.PendingAmount(final, req.AmountReceived),
		PaymentMode:    req.PaymentMode,
	}

	// Mutación optimista: guardar copias previas para poder compensar y
	// fijar aquí el stock destino de cada línea. Las escrituras remotas usan
	// ese valor capturado, no una relectura: un evento del feed que aterrice
	// entre la mutación y la escritura no cambia lo que se persiste.
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
		targets[i] = v.Stock - line.Quantity
		uc.store.MergeVariation(line.VariationID, func(dst *entity.Variation) {
			dst.Stock -= line.Quantity
		})
	}
	uc.store.InsertBill(bill)

	rollback := func() {
		uc.store.RemoveBill(bill.ID)
		for _, v := range prior {
			uc.store.ReplaceVariation(v)
		}
	}

	if err := uc.bills.Create(&bill); err != nil {
		rollback()
		uc.log.Error().Err(err).Str("bill_id", bill.ID).Msg("Error persistiendo venta, estado local revertido")
		return nil, fmt.Errorf("error al persistir venta: %w", err)
	}

	for i, line := range lines {
		if !known[i] {
			continue
		}
		if !seen[line.VariationID] {
			continue
		}
		if err := uc.variations.UpdateStock(line.VariationID, targets[i]); err != nil {
			rollback()
			uc.removeRemoteBill(bill.ID)
			uc.restoreRemoteStock(prior)
			uc.log.Error().Err(err).Str("bill_id", bill.ID).Str("variation_id", line.VariationID).
				Msg("Error actualizando stock remoto, venta revertida")
			return nil, fmt.Errorf("error al actualizar stock de variación %s: %w", line.VariationID, err)
		}
	}

	uc.log.Info().Str("bill_id", bill.ID).Str("customer", bill.CustomerName).
		Str("total", bill.FinalAmount.String()).Msg("Venta confirmada")
	return &bill, nil
}

// removeRemoteBill quita la fila ya insertada cuando el commit quedó a medias.
// Sin esto el eco del feed reinsertaría en el estado local una venta que el
// operador vio fallar. Mejor esfuerzo: un fallo aquí solo se registra.
func (uc *CommitSaleUseCase) removeRemoteBill(id string) {
	if err := uc.bills.Delete(id); err != nil {
		uc.log.Warn().Err(err).Str("bill_id", id).Msg("No se pudo quitar la venta remota huérfana")
	}
}

// restoreRemoteStock reescribe en remoto el stock previo de las variaciones ya
// tocadas. Mejor esfuerzo: un fallo aquí solo se registra, el feed de cambios
// terminará convergiendo el estado.
func (uc *CommitSaleUseCase) restoreRemoteStock(prior []entity.Variation) {
	for _, v := range prior {
		if err := uc.variations.UpdateStock(v.ID, v.Stock); err != nil {
			uc.log.Warn().Err(err).Str("variation_id", v.ID).Msg("No se pudo restaurar stock remoto")
		}
	}
}
