package reconciler_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/muebleria-pos/internal/application/reconciler"
	"github.com/jhoicas/muebleria-pos/internal/application/store"
	"github.com/jhoicas/muebleria-pos/internal/domain/entity"
	"github.com/jhoicas/muebleria-pos/internal/domain/feed"
	"github.com/jhoicas/muebleria-pos/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// fakeCategorySource devuelve una lista fija y cuenta las relecturas.
type fakeCategorySource struct {
	names []string
	calls int
}

func (f *fakeCategorySource) FetchCategories() ([]string, error) {
	f.calls++
	return append([]string(nil), f.names...), nil
}

func newReconciler(st *store.Store, cats *fakeCategorySource) *reconciler.Reconciler {
	return reconciler.New(st, cats, logger.Nop())
}

func evento(t *testing.T, table, op string, record string, oldKey string) feed.Event {
	t.Helper()
	ev := feed.Event{Table: table, Op: op, OldKey: oldKey}
	if record != "" {
		ev.Record = json.RawMessage(record)
	}
	return ev
}

// ──────────────────────────────────────────────────────────────────────────────
// Idempotencia de INSERT
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: El eco de un INSERT propio no duplica la entidad.
func TestApply_InsertDuplicadoEsNoOp(t *testing.T) {
	st := store.New()
	r := newReconciler(st, &fakeCategorySource{})

	ev := evento(t, feed.TableProducts, feed.OpInsert,
		`{"id":"p1","name":"Plywood","category":"Plywood","image":""}`, "")

	require.NoError(t, r.Apply(ev))
	require.NoError(t, r.Apply(ev), "aplicar el mismo evento dos veces no debe fallar")

	snap := st.Snapshot()
	require.Len(t, snap.Products, 1, "el producto no debe duplicarse")
	assert.Equal(t, "Plywood", snap.Products[0].Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Merge superficial de UPDATE
// ──────────────────────────────────────────────────────────────────────────────

// Caso 2: Un UPDATE solo sobreescribe los campos presentes en el payload; los
// ausentes sobreviven.
func TestApply_UpdateParcialPreservaCamposAusentes(t *testing.T) {
	st := store.New()
	st.InsertVariation(entity.Variation{
		ID: "v1", ProductID: "p1", Name: "25mm (1 inch)",
		Stock: 12, SellingPrice: decimal.NewFromInt(100), Color: "#8B4513",
	})
	r := newReconciler(st, &fakeCategorySource{})

	// Payload solo con stock: nombre, precio y color deben quedar como están.
	ev := evento(t, feed.TableVariations, feed.OpUpdate, `{"id":"v1","stock":9}`, "")
	require.NoError(t, r.Apply(ev))

	v, ok := st.VariationByID("v1")
	require.True(t, ok)
	assert.Equal(t, 9, v.Stock)
	assert.Equal(t, "25mm (1 inch)", v.Name, "el nombre debe sobrevivir al merge")
	assert.True(t, decimal.NewFromInt(100).Equal(v.SellingPrice))
	assert.Equal(t, "#8B4513", v.Color)
}

// Caso 3: UPDATE de un id desconocido es no-op, no crea la entidad.
func TestApply_UpdateIdDesconocidoEsNoOp(t *testing.T) {
	st := store.New()
	r := newReconciler(st, &fakeCategorySource{})

	ev := evento(t, feed.TableVariations, feed.OpUpdate, `{"id":"v99","stock":5}`, "")
	require.NoError(t, r.Apply(ev))

	assert.Empty(t, st.Snapshot().Variations, "un UPDATE huérfano no debe crear fila local")
}

// Caso 4: Aplicar el mismo UPDATE dos veces deja el estado igual que una vez.
func TestApply_UpdateEsIdempotente(t *testing.T) {
	st := store.New()
	st.InsertVariation(entity.Variation{ID: "v1", ProductID: "p1", Stock: 12})
	r := newReconciler(st, &fakeCategorySource{})

	ev := evento(t, feed.TableVariations, feed.OpUpdate, `{"id":"v1","stock":9}`, "")
	require.NoError(t, r.Apply(ev))
	require.NoError(t, r.Apply(ev))

	v, _ := st.VariationByID("v1")
	assert.Equal(t, 9, v.Stock)
}

// ──────────────────────────────────────────────────────────────────────────────
// DELETE
// ──────────────────────────────────────────────────────────────────────────────

// Caso 5: DELETE quita por clave de la imagen anterior.
func TestApply_DeleteQuitaPorClave(t *testing.T) {
	st := store.New()
	st.InsertProduct(entity.Product{ID: "p1", Name: "Plywood"})
	r := newReconciler(st, &fakeCategorySource{})

	ev := evento(t, feed.TableProducts, feed.OpDelete, "", "p1")
	require.NoError(t, r.Apply(ev))
	require.NoError(t, r.Apply(ev), "borrar lo ya borrado no debe fallar")

	assert.Empty(t, st.Snapshot().Products)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transacciones
// ──────────────────────────────────────────────────────────────────────────────

// Caso 6: INSERT de una venta con sus líneas embebidas.
func TestApply_InsertBillConLineas(t *testing.T) {
	st := store.New()
	r := newReconciler(st, &fakeCategorySource{})

	record := `{
		"id":"b1","customer_name":"Ramesh","contact_no":"",
		"date":"2026-08-30T10:00:00Z",
		"items":[{"productId":"p1","variationId":"v1","productName":"Plywood","variationName":"25mm (1 inch)","quantity":3,"rate":"100","total":"300"}],
		"total_amount":"300","discount":"0","final_amount":"300",
		"amount_received":"300","amount_pending":"0","payment_mode":"Cash"
	}`
	require.NoError(t, r.Apply(evento(t, feed.TableBills, feed.OpInsert, record, "")))

	b, ok := st.BillByID("b1")
	require.True(t, ok)
	assert.Equal(t, "Ramesh", b.CustomerName)
	require.Len(t, b.Items, 1)
	assert.Equal(t, 3, b.Items[0].Quantity)
	assert.True(t, decimal.NewFromInt(300).Equal(b.TotalAmount))
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías: relectura completa
// ──────────────────────────────────────────────────────────────────────────────

// Caso 7: Cualquier evento de categories dispara una relectura completa. El
// eco de un alta propia de 'Lamps' converge a la misma lista, sin duplicar.
func TestApply_EventoDeCategoriaRefrescaLista(t *testing.T) {
	st := store.New()
	st.ReplaceCategories([]string{"Sofa Sets", "Lamps"})
	cats := &fakeCategorySource{names: []string{"Sofa Sets", "Lamps"}}
	r := newReconciler(st, cats)

	// Eco del INSERT optimista propio de 'Lamps'.
	ev := evento(t, feed.TableCategories, feed.OpInsert, `{"name":"Lamps"}`, "")
	require.NoError(t, r.Apply(ev))

	assert.Equal(t, 1, cats.calls, "debe releer del remoto exactamente una vez")
	assert.Equal(t, []string{"Sofa Sets", "Lamps"}, st.Categories(),
		"el eco no debe duplicar la categoría")
}

// Caso 8: Una tabla desconocida en el feed devuelve error y no toca el estado.
func TestApply_TablaDesconocida(t *testing.T) {
	st := store.New()
	r := newReconciler(st, &fakeCategorySource{})

	err := r.Apply(evento(t, "warehouses", feed.OpInsert, `{"id":"w1"}`, ""))
	assert.Error(t, err)
	assert.Empty(t, st.Snapshot().Products)
}
