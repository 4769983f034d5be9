package inventory_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/muebleria-pos/internal/application/inventory"
	"github.com/jhoicas/muebleria-pos/internal/application/store"
	"github.com/jhoicas/muebleria-pos/internal/domain"
	"github.com/jhoicas/muebleria-pos/pkg/logger"
)

type fakeCategoryRepo struct {
	creates []string
	deletes []string
	failAll bool
}

func (f *fakeCategoryRepo) Create(name string) error {
	if f.failAll {
		return errors.New("remoto no disponible")
	}
	f.creates = append(f.creates, name)
	return nil
}

func (f *fakeCategoryRepo) Delete(name string) error {
	if f.failAll {
		return errors.New("remoto no disponible")
	}
	f.deletes = append(f.deletes, name)
	return nil
}

func (f *fakeCategoryRepo) List() ([]string, error) { return nil, nil }

func nuevoCategorias(st *store.Store, repo *fakeCategoryRepo) *inventory.CategoryUseCase {
	return inventory.NewCategoryUseCase(st, repo, logger.Nop())
}

// ──────────────────────────────────────────────────────────────────────────────
// Altas y bajas explícitas
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: Alta simple.
func TestCategoryAdd_Simple(t *testing.T) {
	st := store.New()
	repo := &fakeCategoryRepo{}
	uc := nuevoCategorias(st, repo)

	require.NoError(t, uc.Add("Lamps"))
	assert.Equal(t, []string{"Lamps"}, st.Categories())
	assert.Equal(t, []string{"Lamps"}, repo.creates)
}

// Caso 2: Alta duplicada es no-op exitoso, sin tocar el remoto.
func TestCategoryAdd_DuplicadaEsNoOp(t *testing.T) {
	st := store.New()
	st.ReplaceCategories([]string{"Lamps"})
	repo := &fakeCategoryRepo{}
	uc := nuevoCategorias(st, repo)

	require.NoError(t, uc.Add("Lamps"))
	assert.Equal(t, []string{"Lamps"}, st.Categories())
	assert.Empty(t, repo.creates, "el remoto no debe recibir la duplicada")
}

// Caso 3: Si el remoto falla, el alta local se revierte.
func TestCategoryAdd_RollbackSiFallaRemoto(t *testing.T) {
	st := store.New()
	uc := nuevoCategorias(st, &fakeCategoryRepo{failAll: true})

	err := uc.Add("Lamps")
	require.Error(t, err)
	assert.Empty(t, st.Categories())
}

// Caso 4: Baja de un nombre inexistente.
func TestCategoryRemove_NoEncontrada(t *testing.T) {
	uc := nuevoCategorias(store.New(), &fakeCategoryRepo{})

	err := uc.Remove("Fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Edición en bloque por diferencia
// ──────────────────────────────────────────────────────────────────────────────

// Caso 5: [A,B] → [A,B,C] identifica la agregada.
func TestCategoryEditAll_ListaMasLargaAgrega(t *testing.T) {
	st := store.New()
	st.ReplaceCategories([]string{"Sofa Sets", "Dining Tables"})
	repo := &fakeCategoryRepo{}
	uc := nuevoCategorias(st, repo)

	require.NoError(t, uc.EditAll([]string{"Sofa Sets", "Dining Tables", "Lamps"}))

	assert.Equal(t, []string{"Sofa Sets", "Dining Tables", "Lamps"}, st.Categories())
	assert.Equal(t, []string{"Lamps"}, repo.creates)
	assert.Empty(t, repo.deletes)
}

// Caso 6: [A,B,C] → [A,C] identifica la quitada.
func TestCategoryEditAll_ListaMasCortaQuita(t *testing.T) {
	st := store.New()
	st.ReplaceCategories([]string{"Sofa Sets", "Dining Tables", "Lamps"})
	repo := &fakeCategoryRepo{}
	uc := nuevoCategorias(st, repo)

	require.NoError(t, uc.EditAll([]string{"Sofa Sets", "Lamps"}))

	assert.Equal(t, []string{"Sofa Sets", "Lamps"}, st.Categories())
	assert.Equal(t, []string{"Dining Tables"}, repo.deletes)
	assert.Empty(t, repo.creates)
}

// Caso 7: Lista idéntica o diff ambiguo no toca nada.
func TestCategoryEditAll_SinDiferenciaEsNoOp(t *testing.T) {
	st := store.New()
	st.ReplaceCategories([]string{"Sofa Sets", "Lamps"})
	repo := &fakeCategoryRepo{}
	uc := nuevoCategorias(st, repo)

	// Misma lista reordenada: mismo largo y nada ausente, no-op.
	require.NoError(t, uc.EditAll([]string{"Lamps", "Sofa Sets"}))

	assert.Equal(t, []string{"Sofa Sets", "Lamps"}, st.Categories())
	assert.Empty(t, repo.creates)
	assert.Empty(t, repo.deletes)
}
