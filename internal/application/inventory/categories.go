package inventory

import (
	"fmt"
	"strings"

	"github.com/jhoicas/muebleria-pos/internal/application/store"
	"github.com/jhoicas/muebleria-pos/internal/domain"
	"github.com/jhoicas/muebleria-pos/internal/domain/repository"
	"github.com/jhoicas/muebleria-pos/pkg/logger"
)

// CategoryUseCase gestiona la lista plana de categorías.
type CategoryUseCase struct {
	store      *store.Store
	categories repository.CategoryRepository
	log        *logger.Logger
}

// NewCategoryUseCase crea el caso de uso de categorías.
func NewCategoryUseCase(st *store.Store, categories repository.CategoryRepository, log *logger.Logger) *CategoryUseCase {
	return &CategoryUseCase{store: st, categories: categories, log: log}
}

// Add agrega una categoría por nombre. Agregar un nombre ya presente es un
// no-op exitoso.
func (uc *CategoryUseCase) Add(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: la categoría necesita nombre", domain.ErrInvalidInput)
	}

	if !uc.store.AddCategory(name) {
		return nil
	}
	if err := uc.categories.Create(name); err != nil {
		uc.store.RemoveCategory(name)
		uc.log.Error().Err(err).Str("categoria", name).Msg("Error persistiendo categoría, estado local revertido")
		return fmt.Errorf("error al crear categoría: %w", err)
	}
	uc.log.Info().Str("categoria", name).Msg("Categoría creada")
	return nil
}

// Remove quita una categoría por nombre. Los productos etiquetados con ese
// nombre conservan la etiqueta huérfana.
func (uc *CategoryUseCase) Remove(name string) error {
	name = strings.TrimSpace(name)
	if !uc.store.RemoveCategory(name) {
		return fmt.Errorf("%w: categoría %q", domain.ErrNotFound, name)
	}
	if err := uc.categories.Delete(name); err != nil {
		uc.store.AddCategory(name)
		uc.log.Error().Err(err).Str("categoria", name).Msg("Error borrando categoría, estado local revertido")
		return fmt.Errorf("error al borrar categoría: %w", err)
	}
	uc.log.Info().Str("categoria", name).Msg("Categoría borrada")
	return nil
}

// EditAll recibe la lista completa editada y la reduce a una sola operación
// por diferencia contra la vigente: si la nueva es más larga se agrega la
// primera entrada ausente en la vieja; si no, se quita la primera entrada de
// la vieja ausente en la nueva. Si el diff no identifica nada (listas
// reordenadas o renombres múltiples) no se toca nada.
func (uc *CategoryUseCase) EditAll(names []string) error {
	current := uc.store.Categories()

	if len(names) > len(current) {
		for _, n := range names {
			if !contains(current, n) {
				return uc.Add(n)
			}
		}
	} else {
		for _, c := range current {
			if !contains(names, c) {
				return uc.Remove(c)
			}
		}
	}

	uc.log.Debug().Int("vigentes", len(current)).Int("nuevas", len(names)).
		Msg("Edición de categorías sin diferencia identificable, sin cambios")
	return nil
}

func contains(list []string, name string) bool {
	for _, v := range list {
		if v == name {
			return true
		}
	}
	return false
}
