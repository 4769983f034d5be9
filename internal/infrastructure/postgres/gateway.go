package postgres

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/muebleria-pos/internal/application/store"
	"github.com/jhoicas/muebleria-pos/pkg/logger"
)

// Gateway agrupa los repositorios por tabla y ofrece la carga completa del
// estado con siembra de cortesía cuando la base llega vacía.
type Gateway struct {
	Products   *ProductRepo
	Variations *VariationRepo
	Bills      *BillRepo
	Purchases  *PurchaseRepo
	Categories *CategoryRepo
	log        *logger.Logger
}

// NewGateway construye el gateway sobre el pool.
func NewGateway(pool *pgxpool.Pool, log *logger.Logger) *Gateway {
	return &Gateway{
		Products:   NewProductRepository(pool),
		Variations: NewVariationRepository(pool),
		Bills:      NewBillRepository(pool),
		Purchases:  NewPurchaseRepository(pool),
		Categories: NewCategoryRepository(pool),
		log:        log,
	}
}

// LoadAll lee las cinco colecciones en paralelo. Si productos Y categorías
// vienen vacíos siembra el catálogo de demostración y relee una sola vez; un
// segundo resultado vacío devuelve colecciones vacías (evita bucles de
// siembra). Si la siembra falla, devuelve colecciones vacías con los nombres
// de categoría de demostración para que la UI tenga algo que mostrar.
func (g *Gateway) LoadAll(ctx context.Context) (store.Snapshot, error) {
	return g.loadAll(ctx, 0)
}

func (g *Gateway) loadAll(ctx context.Context, retryCount int) (store.Snapshot, error) {
	var (
		snap store.Snapshot
		errs [5]error
		wg   sync.WaitGroup
	)
	wg.Add(5)
	go func() { defer wg.Done(); snap.Products, errs[0] = g.Products.List() }()
	go func() { defer wg.Done(); snap.Variations, errs[1] = g.Variations.List() }()
	go func() { defer wg.Done(); snap.Bills, errs[2] = g.Bills.List() }()
	go func() { defer wg.Done(); snap.Purchases, errs[3] = g.Purchases.List() }()
	go func() { defer wg.Done(); snap.Categories, errs[4] = g.Categories.List() }()
	wg.Wait()

	for i, name := range [5]string{"products", "variations", "bills", "purchases", "categories"} {
		if errs[i] != nil {
			return store.Snapshot{}, fmt.Errorf("cargar %s: %w", name, errs[i])
		}
	}

	if len(snap.Products) == 0 && len(snap.Categories) == 0 {
		if retryCount > 0 {
			return store.Snapshot{}, nil
		}
		if err := g.seedDemoData(); err != nil {
			g.log.Warn().Err(err).Msg("siembra del catálogo de demostración falló")
			return store.Snapshot{Categories: append([]string(nil), demoCategories...)}, nil
		}
		g.log.Info().Msg("base vacía: catálogo de demostración sembrado")
		return g.loadAll(ctx, 1)
	}

	return snap, nil
}

// FetchCategories relee solo la lista de nombres de categoría (usada por el
// reconciliador: las categorías no tienen clave, se refrescan completas).
func (g *Gateway) FetchCategories() ([]string, error) {
	return g.Categories.List()
}

func (g *Gateway) seedDemoData() error {
	for _, name := range demoCategories {
		if err := g.Categories.Create(name); err != nil {
			return err
		}
	}
	products := demoProducts()
	for i := range products {
		if err := g.Products.Create(&products[i]); err != nil {
			return err
		}
	}
	return g.Variations.CreateBatch(demoVariations())
}
