package store_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/muebleria-pos/internal/application/store"
	"github.com/jhoicas/muebleria-pos/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func variacion(id, productID string, stock int) entity.Variation {
	return entity.Variation{
		ID:            id,
		ProductID:     productID,
		Name:          "25mm (1 inch)",
		Stock:         stock,
		PurchasePrice: decimal.NewFromInt(80),
		SellingPrice:  decimal.NewFromInt(100),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Inserciones idempotentes
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: Insertar dos veces el mismo producto deja una sola entrada.
func TestInsertProduct_DobleInsercionEsNoOp(t *testing.T) {
	st := store.New()
	p := entity.Product{ID: "p1", Name: "Plywood"}

	assert.True(t, st.InsertProduct(p), "la primera inserción debe aplicarse")
	assert.False(t, st.InsertProduct(p), "la segunda inserción debe ser no-op")

	snap := st.Snapshot()
	require.Len(t, snap.Products, 1)
	assert.Equal(t, "Plywood", snap.Products[0].Name)
}

// Caso 2: Insertar conserva el orden de llegada.
func TestInsertProduct_PreservaOrden(t *testing.T) {
	st := store.New()
	st.InsertProduct(entity.Product{ID: "p1", Name: "Plywood"})
	st.InsertProduct(entity.Product{ID: "p2", Name: "Laminates"})
	st.InsertProduct(entity.Product{ID: "p3", Name: "Veneers"})

	snap := st.Snapshot()
	require.Len(t, snap.Products, 3)
	assert.Equal(t, []string{"p1", "p2", "p3"},
		[]string{snap.Products[0].ID, snap.Products[1].ID, snap.Products[2].ID})
}

// ──────────────────────────────────────────────────────────────────────────────
// Merge y remove
// ──────────────────────────────────────────────────────────────────────────────

// Caso 3: MergeVariation sobre id desconocido es no-op y devuelve false.
func TestMergeVariation_IdDesconocidoEsNoOp(t *testing.T) {
	st := store.New()
	st.InsertVariation(variacion("v1", "p1", 10))

	ok := st.MergeVariation("v99", func(v *entity.Variation) { v.Stock = 0 })

	assert.False(t, ok, "merge de id desconocido debe devolver false")
	v, found := st.VariationByID("v1")
	require.True(t, found)
	assert.Equal(t, 10, v.Stock, "la variación existente no debe tocarse")
}

// Caso 4: MergeVariation aplica fn solo a la variación con ese id.
func TestMergeVariation_AplicaSoloAlObjetivo(t *testing.T) {
	st := store.New()
	st.InsertVariation(variacion("v1", "p1", 10))
	st.InsertVariation(variacion("v2", "p1", 5))

	ok := st.MergeVariation("v1", func(v *entity.Variation) { v.Stock -= 3 })
	require.True(t, ok)

	v1, _ := st.VariationByID("v1")
	v2, _ := st.VariationByID("v2")
	assert.Equal(t, 7, v1.Stock)
	assert.Equal(t, 5, v2.Stock)
}

// Caso 5: RemoveBill quita la venta y deja el resto intacto.
func TestRemoveBill_QuitaSoloElObjetivo(t *testing.T) {
	st := store.New()
	st.InsertBill(entity.Bill{ID: "b1", CustomerName: "Ramesh"})
	st.InsertBill(entity.Bill{ID: "b2", CustomerName: "Suresh"})

	assert.True(t, st.RemoveBill("b1"))
	assert.False(t, st.RemoveBill("b1"), "borrar dos veces debe ser no-op")

	snap := st.Snapshot()
	require.Len(t, snap.Bills, 1)
	assert.Equal(t, "b2", snap.Bills[0].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Snapshot aislado
// ──────────────────────────────────────────────────────────────────────────────

// Caso 6: Mutar el slice devuelto por Snapshot no afecta al estado interno.
func TestSnapshot_DevuelveCopias(t *testing.T) {
	st := store.New()
	st.InsertProduct(entity.Product{ID: "p1", Name: "Plywood"})

	snap := st.Snapshot()
	snap.Products[0].Name = "Alterado"

	p, found := st.ProductByID("p1")
	require.True(t, found)
	assert.Equal(t, "Plywood", p.Name, "el estado interno no debe cambiar")
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías
// ──────────────────────────────────────────────────────────────────────────────

// Caso 7: AddCategory es idempotente; dos altas de 'Lamps' dejan una entrada.
func TestAddCategory_Idempotente(t *testing.T) {
	st := store.New()

	assert.True(t, st.AddCategory("Lamps"))
	assert.False(t, st.AddCategory("Lamps"), "la segunda alta debe ser no-op")

	assert.Equal(t, []string{"Lamps"}, st.Categories())
}

// Caso 8: RemoveCategory quita solo el nombre indicado y preserva el orden.
func TestRemoveCategory_PreservaOrden(t *testing.T) {
	st := store.New()
	st.ReplaceCategories([]string{"Sofa Sets", "Dining Tables", "Lamps"})

	assert.True(t, st.RemoveCategory("Dining Tables"))
	assert.False(t, st.RemoveCategory("Dining Tables"))

	assert.Equal(t, []string{"Sofa Sets", "Lamps"}, st.Categories())
}

// Caso 9: ReplaceAll sustituye todas las colecciones de una vez.
func TestReplaceAll_SustituyeTodo(t *testing.T) {
	st := store.New()
	st.InsertProduct(entity.Product{ID: "viejo"})
	st.AddCategory("Vieja")

	st.ReplaceAll(store.Snapshot{
		Products:   []entity.Product{{ID: "p1", Name: "Plywood"}},
		Variations: []entity.Variation{variacion("v1", "p1", 12)},
		Categories: []string{"Plywood", "Laminates"},
	})

	snap := st.Snapshot()
	require.Len(t, snap.Products, 1)
	assert.Equal(t, "p1", snap.Products[0].ID)
	require.Len(t, snap.Variations, 1)
	assert.Empty(t, snap.Bills)
	assert.Equal(t, []string{"Plywood", "Laminates"}, snap.Categories)
}
