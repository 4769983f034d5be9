package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/muebleria-pos/internal/domain"
	"github.com/jhoicas/muebleria-pos/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
// La tabla solo tiene la columna name; el alta y la baja van por nombre.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create inserta una categoría nueva.
func (r *CategoryRepo) Create(name string) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO categories (name) VALUES ($1)`, name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// Delete elimina la categoría por nombre. Sin cascada: los productos
// etiquetados con ese nombre conservan la etiqueta huérfana.
func (r *CategoryRepo) Delete(name string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM categories WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// List devuelve los nombres de categoría en orden de alta.
func (r *CategoryRepo) List() ([]string, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT name FROM categories ORDER BY created_at, name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, name)
	}
	return list, rows.Err()
}
