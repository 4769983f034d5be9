package reports

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/muebleria-pos/internal/application/dto"
	"github.com/jhoicas/muebleria-pos/internal/application/store"
	"github.com/jhoicas/muebleria-pos/internal/domain/entity"
)

// topVariationLimit cuántas variaciones más vendidas entrega el resumen.
const topVariationLimit = 5

// UseCase calcula agregados de ventas y compras sobre el estado local: no
// toca el remoto, trabaja sobre el snapshot vigente.
type UseCase struct {
	store *store.Store
}

// New crea el caso de uso de reportes.
func New(st *store.Store) *UseCase {
	return &UseCase{store: st}
}

// Summary devuelve los totales de ventas y compras, el desglose por modo de
// pago y las variaciones más vendidas por unidades.
func (uc *UseCase) Summary() *dto.SummaryReportResponse {
	snap := uc.store.Snapshot()

	resp := &dto.SummaryReportResponse{
		SalesCount:       len(snap.Bills),
		SalesTotal:       decimal.Zero,
		SalesReceived:    decimal.Zero,
		SalesPending:     decimal.Zero,
		PurchasesCount:   len(snap.Purchases),
		PurchasesTotal:   decimal.Zero,
		PurchasesPaid:    decimal.Zero,
		PurchasesPending: decimal.Zero,
	}

	byMode := map[string]decimal.Decimal{}
	type agg struct {
		units   int
		revenue decimal.Decimal
		product string
		name    string
	}
	byVariation := map[string]*agg{}

	for _, b := range snap.Bills {
		resp.SalesTotal = resp.SalesTotal.Add(b.FinalAmount)
		resp.SalesReceived = resp.SalesReceived.Add(b.AmountReceived)
		resp.SalesPending = resp.SalesPending.Add(b.AmountPending)
		byMode[b.PaymentMode] = byMode[b.PaymentMode].Add(b.FinalAmount)

		for _, it := range b.Items {
			a, ok := byVariation[it.VariationID]
			if !ok {
				a = &agg{revenue: decimal.Zero, product: it.ProductName, name: it.VariationName}
				byVariation[it.VariationID] = a
			}
			a.units += it.Quantity
			a.revenue = a.revenue.Add(it.Total)
		}
	}

	for _, p := range snap.Purchases {
		resp.PurchasesTotal = resp.PurchasesTotal.Add(p.TotalAmount)
		resp.PurchasesPaid = resp.PurchasesPaid.Add(p.AmountPaid)
		resp.PurchasesPending = resp.PurchasesPending.Add(p.AmountPending)
	}

	for _, mode := range []string{entity.PaymentCash, entity.PaymentOnline, entity.PaymentCheque, entity.PaymentCredit} {
		if total, ok := byMode[mode]; ok {
			resp.SalesByMode = append(resp.SalesByMode, dto.PaymentModeTotal{Mode: mode, Total: total})
		}
	}

	top := make([]dto.TopVariation, 0, len(byVariation))
	for id, a := range byVariation {
		top = append(top, dto.TopVariation{
			VariationID:   id,
			ProductName:   a.product,
			VariationName: a.name,
			UnitsSold:     a.units,
			Revenue:       a.revenue,
		})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].UnitsSold != top[j].UnitsSold {
			return top[i].UnitsSold > top[j].UnitsSold
		}
		return top[i].VariationID < top[j].VariationID
	})
	if len(top) > topVariationLimit {
		top = top[:topVariationLimit]
	}
	resp.TopVariations = top

	return resp
}
