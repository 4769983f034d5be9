package reconciler

import (
	"context"
	"fmt"

	"github.com/jhoicas/muebleria-pos/internal/application/store"
	"github.com/jhoicas/muebleria-pos/internal/domain/entity"
	"github.com/jhoicas/muebleria-pos/internal/domain/feed"
	"github.com/jhoicas/muebleria-pos/internal/infrastructure/postgres"
	"github.com/jhoicas/muebleria-pos/pkg/logger"
)

// CategorySource relee la lista completa de nombres de categoría.
type CategorySource interface {
	FetchCategories() ([]string, error)
}

// Reconciler consume los eventos del canal de cambios y los funde en el
// contenedor de estado. Corre en un único goroutine consumidor, desacoplado
// de los handlers que producen mutaciones optimistas; ambos caminos pasan por
// las mismas funciones de mutación del Store, así las reglas de merge viven
// en un solo lugar.
//
// Las reglas por evento:
//
//	INSERT: agregar si el id no está (el eco del propio write optimista es no-op)
//	UPDATE: merge superficial por id; id desconocido es no-op
//	DELETE: quitar por id
//	categories (cualquier op): releer la lista completa; son strings planos,
//	no filas con clave, el patch incremental no tiene sentido
//
// Aplicar dos veces el mismo INSERT o UPDATE deja el estado igual que una vez.
type Reconciler struct {
	store *store.Store
	cats  CategorySource
	log   *logger.Logger
}

// New construye el reconciliador.
func New(st *store.Store, cats CategorySource, log *logger.Logger) *Reconciler {
	return &Reconciler{store: st, cats: cats, log: log}
}

// Run consume eventos hasta que el canal se cierre o ctx se cancele.
// Un evento malformado se registra y se omite; nunca tumba el loop.
func (r *Reconciler) Run(ctx context.Context, events <-chan feed.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if err := r.Apply(ev); err != nil {
				r.log.Warn().Err(err).Str("tabla", ev.Table).Str("op", ev.Op).Msg("evento de cambio no aplicado")
			}
		}
	}
}

// Apply funde un evento en el estado. Exportado para poder ejercitar las
// reglas de merge sin el loop.
func (r *Reconciler) Apply(ev feed.Event) error {
	switch ev.Table {
	case feed.TableProducts:
		return r.applyProduct(ev)
	case feed.TableVariations:
		return r.applyVariation(ev)
	case feed.TableBills:
		return r.applyBill(ev)
	case feed.TablePurchases:
		return r.applyPurchase(ev)
	case feed.TableCategories:
		return r.refreshCategories()
	default:
		return fmt.Errorf("tabla desconocida en el feed: %q", ev.Table)
	}
}

func (r *Reconciler) applyProduct(ev feed.Event) error {
	switch ev.Op {
	case feed.OpInsert:
		row, err := postgres.DecodeProductRow(ev.Record)
		if err != nil {
			return err
		}
		r.store.InsertProduct(row.Entity())
	case feed.OpUpdate:
		row, err := postgres.DecodeProductRow(ev.Record)
		if err != nil {
			return err
		}
		if row.ID == nil {
			return fmt.Errorf("evento UPDATE de products sin id")
		}
		r.store.MergeProduct(*row.ID, row.ApplyTo)
	case feed.OpDelete:
		r.store.RemoveProduct(ev.OldKey)
	default:
		return fmt.Errorf("operación desconocida: %q", ev.Op)
	}
	return nil
}

func (r *Reconciler) applyVariation(ev feed.Event) error {
	switch ev.Op {
	case feed.OpInsert:
		row, err := postgres.DecodeVariationRow(ev.Record)
		if err != nil {
			return err
		}
		r.store.InsertVariation(row.Entity())
	case feed.OpUpdate:
		row, err := postgres.DecodeVariationRow(ev.Record)
		if err != nil {
			return err
		}
		if row.ID == nil {
			return fmt.Errorf("evento UPDATE de variations sin id")
		}
		r.store.MergeVariation(*row.ID, row.ApplyTo)
	case feed.OpDelete:
		r.store.RemoveVariation(ev.OldKey)
	default:
		return fmt.Errorf("operación desconocida: %q", ev.Op)
	}
	return nil
}

func (r *Reconciler) applyBill(ev feed.Event) error {
	switch ev.Op {
	case feed.OpInsert:
		row, err := postgres.DecodeBillRow(ev.Record)
		if err != nil {
			return err
		}
		bill, err := row.Entity()
		if err != nil {
			return err
		}
		r.store.InsertBill(bill)
	case feed.OpUpdate:
		row, err := postgres.DecodeBillRow(ev.Record)
		if err != nil {
			return err
		}
		if row.ID == nil {
			return fmt.Errorf("evento UPDATE de bills sin id")
		}
		existing, ok := r.store.BillByID(*row.ID)
		if !ok {
			return nil // nada que reemplazar
		}
		if err := row.ApplyTo(&existing); err != nil {
			return err
		}
		r.store.MergeBill(*row.ID, func(dst *entity.Bill) { *dst = existing })
	case feed.OpDelete:
		r.store.RemoveBill(ev.OldKey)
	default:
		return fmt.Errorf("operación desconocida: %q", ev.Op)
	}
	return nil
}

func (r *Reconciler) applyPurchase(ev feed.Event) error {
	switch ev.Op {
	case feed.OpInsert:
		row, err := postgres.DecodePurchaseRow(ev.Record)
		if err != nil {
			return err
		}
		purchase, err := row.Entity()
		if err != nil {
			return err
		}
		r.store.InsertPurchase(purchase)
	case feed.OpUpdate:
		row, err := postgres.DecodePurchaseRow(ev.Record)
		if err != nil {
			return err
		}
		if row.ID == nil {
			return fmt.Errorf("evento UPDATE de purchases sin id")
		}
		existing, ok := r.store.PurchaseByID(*row.ID)
		if !ok {
			return nil
		}
		if err := row.ApplyTo(&existing); err != nil {
			return err
		}
		r.store.MergePurchase(*row.ID, func(dst *entity.Purchase) { *dst = existing })
	case feed.OpDelete:
		r.store.RemovePurchase(ev.OldKey)
	default:
		return fmt.Errorf("operación desconocida: %q", ev.Op)
	}
	return nil
}

func (r *Reconciler) refreshCategories() error {
	cats, err := r.cats.FetchCategories()
	if err != nil {
		return fmt.Errorf("releer categorías: %w", err)
	}
	r.store.ReplaceCategories(cats)
	return nil
}
