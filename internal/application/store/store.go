package store

import (
	"sync"

	"github.com/jhoicas/muebleria-pos/internal/domain/entity"
)

// Snapshot es una vista de solo lectura de todas las colecciones.
type Snapshot struct {
	Products   []entity.Product
	Variations []entity.Variation
	Bills      []entity.Bill
	Purchases  []entity.Purchase
	Categories []string
}

// Store es el contenedor de estado en memoria de la aplicación: productos,
// variaciones, ventas, compras y categorías. Es el único recurso mutable
// compartido; lo escriben los handlers de acciones del operador (mutación
// optimista) y el reconciliador del canal de cambios. Todas las mutaciones
// serializan a través de un mutex, así cada invocación es atómica respecto a
// las demás, el equivalente al hilo único del modelo original.
//
// Las colecciones preservan orden de inserción (slices, no mapas): la capa de
// presentación muestra listas ordenadas y las ventas/compras son un ledger
// append-only.
type Store struct {
	mu         sync.RWMutex
	products   []entity.Product
	variations []entity.Variation
	bills      []entity.Bill
	purchases  []entity.Purchase
	categories []string
}

// New crea un Store vacío.
func New() *Store {
	return &Store{}
}

// ReplaceAll sustituye todas las colecciones (carga inicial o recarga manual).
func (s *Store) ReplaceAll(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append([]entity.Product(nil), snap.Products...)
	s.variations = append([]entity.Variation(nil), snap.Variations...)
	s.bills = append([]entity.Bill(nil), snap.Bills...)
	s.purchases = append([]entity.Purchase(nil), snap.Purchases...)
	s.categories = append([]string(nil), snap.Categories...)
}

// Snapshot devuelve copias de todas las colecciones. Los slices devueltos son
// del llamador; los CartItem internos se tratan como inmutables.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Products:   append([]entity.Product(nil), s.products...),
		Variations: append([]entity.Variation(nil), s.variations...),
		Bills:      append([]entity.Bill(nil), s.bills...),
		Purchases:  append([]entity.Purchase(nil), s.purchases...),
		Categories: append([]string(nil), s.categories...),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Products
// ──────────────────────────────────────────────────────────────────────────────

// ProductByID devuelve una copia del producto y si existe.
func (s *Store) ProductByID(id string) (entity.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.products {
		if s.products[i].ID == id {
			return s.products[i], true
		}
	}
	return entity.Product{}, false
}

// InsertProduct agrega el producto si su id no está presente. Devuelve false
// (no-op) si ya existe: así el eco del feed de una inserción optimista propia
// no duplica la entidad.
func (s *Store) InsertProduct(p entity.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == p.ID {
			return false
		}
	}
	s.products = append(s.products, p)
	return true
}

// ReplaceProduct sustituye el producto con el mismo id. false si no existe.
func (s *Store) ReplaceProduct(p entity.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p
			return true
		}
	}
	return false
}

// MergeProduct aplica fn sobre el producto con ese id (merge superficial de
// un evento UPDATE: fn sobreescribe solo los campos presentes en el payload).
// Id desconocido es no-op y devuelve false.
func (s *Store) MergeProduct(id string, fn func(*entity.Product)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			fn(&s.products[i])
			return true
		}
	}
	return false
}

// RemoveProduct elimina el producto por id. false si no existe.
func (s *Store) RemoveProduct(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return true
		}
	}
	return false
}

// ──────────────────────────────────────────────────────────────────────────────
// Variations
// ──────────────────────────────────────────────────────────────────────────────

// VariationByID devuelve una copia de la variación y si existe.
func (s *Store) VariationByID(id string) (entity.Variation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.variations {
		if s.variations[i].ID == id {
			return s.variations[i], true
		}
	}
	return entity.Variation{}, false
}

// VariationsByProduct devuelve copias de las variaciones del producto.
func (s *Store) VariationsByProduct(productID string) []entity.Variation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entity.Variation
	for i := range s.variations {
		if s.variations[i].ProductID == productID {
			out = append(out, s.variations[i])
		}
	}
	return out
}

// InsertVariation agrega la variación si su id no está presente (idempotente).
func (s *Store) InsertVariation(v entity.Variation) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertVariationLocked(v)
}

// InsertVariations agrega un lote (alta de producto con variaciones iniciales).
func (s *Store) InsertVariations(vars []entity.Variation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range vars {
		s.insertVariationLocked(v)
	}
}

func (s *Store) insertVariationLocked(v entity.Variation) bool {
	for i := range s.variations {
		if s.variations[i].ID == v.ID {
			return false
		}
	}
	s.variations = append(s.variations, v)
	return true
}

// ReplaceVariation sustituye la variación con el mismo id. false si no existe.
func (s *Store) ReplaceVariation(v entity.Variation) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.variations {
		if s.variations[i].ID == v.ID {
			s.variations[i] = v
			return true
		}
	}
	return false
}

// MergeVariation aplica fn sobre la variación con ese id (evento UPDATE).
func (s *Store) MergeVariation(id string, fn func(*entity.Variation)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.variations {
		if s.variations[i].ID == id {
			fn(&s.variations[i])
			return true
		}
	}
	return false
}

// RemoveVariation elimina la variación por id.
func (s *Store) RemoveVariation(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.variations {
		if s.variations[i].ID == id {
			s.variations = append(s.variations[:i], s.variations[i+1:]...)
			return true
		}
	}
	return false
}

// ──────────────────────────────────────────────────────────────────────────────
// Bills / Purchases (ledger append-only; Remove existe solo para el rollback
// compensatorio del committer y para eventos DELETE del feed)
// ──────────────────────────────────────────────────────────────────────────────

// InsertBill agrega la venta si su id no está presente (idempotente).
func (s *Store) InsertBill(b entity.Bill) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bills {
		if s.bills[i].ID == b.ID {
			return false
		}
	}
	s.bills = append(s.bills, b)
	return true
}

// BillByID devuelve una copia de la venta y si existe.
func (s *Store) BillByID(id string) (entity.Bill, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.bills {
		if s.bills[i].ID == id {
			return s.bills[i], true
		}
	}
	return entity.Bill{}, false
}

// MergeBill aplica fn sobre la venta con ese id (evento UPDATE).
func (s *Store) MergeBill(id string, fn func(*entity.Bill)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bills {
		if s.bills[i].ID == id {
			fn(&s.bills[i])
			return true
		}
	}
	return false
}

// RemoveBill elimina la venta por id.
func (s *Store) RemoveBill(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bills {
		if s.bills[i].ID == id {
			s.bills = append(s.bills[:i], s.bills[i+1:]...)
			return true
		}
	}
	return false
}

// InsertPurchase agrega la compra si su id no está presente (idempotente).
func (s *Store) InsertPurchase(p entity.Purchase) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.purchases {
		if s.purchases[i].ID == p.ID {
			return false
		}
	}
	s.purchases = append(s.purchases, p)
	return true
}

// PurchaseByID devuelve una copia de la compra y si existe.
func (s *Store) PurchaseByID(id string) (entity.Purchase, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.purchases {
		if s.purchases[i].ID == id {
			return s.purchases[i], true
		}
	}
	return entity.Purchase{}, false
}

// MergePurchase aplica fn sobre la compra con ese id (evento UPDATE).
func (s *Store) MergePurchase(id string, fn func(*entity.Purchase)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.purchases {
		if s.purchases[i].ID == id {
			fn(&s.purchases[i])
			return true
		}
	}
	return false
}

// RemovePurchase elimina la compra por id.
func (s *Store) RemovePurchase(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.purchases {
		if s.purchases[i].ID == id {
			s.purchases = append(s.purchases[:i], s.purchases[i+1:]...)
			return true
		}
	}
	return false
}

// ──────────────────────────────────────────────────────────────────────────────
// Categories (lista plana de nombres, sin claves)
// ──────────────────────────────────────────────────────────────────────────────

// Categories devuelve una copia de la lista de categorías.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.categories...)
}

// ReplaceCategories sustituye la lista completa (re-fetch tras un evento del
// feed, o edición masiva).
func (s *Store) ReplaceCategories(cats []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = append([]string(nil), cats...)
}

// AddCategory agrega el nombre si no está presente (idempotente: dos altas
// consecutivas de 'Lamps' dejan una sola entrada).
func (s *Store) AddCategory(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categories {
		if c == name {
			return false
		}
	}
	s.categories = append(s.categories, name)
	return true
}

// RemoveCategory quita el nombre de la lista. No tiene efecto cascada sobre
// productos ya etiquetados con ese nombre: la etiqueta huérfana se tolera.
func (s *Store) RemoveCategory(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.categories {
		if c == name {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			return true
		}
	}
	return false
}
