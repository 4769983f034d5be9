package repository

import "github.com/jhoicas/muebleria-pos/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	// Update reemplaza el conjunto completo de campos mapeados por id
	// (no hay semántica de patch parcial).
	Update(product *entity.Product) error
	List() ([]entity.Product, error)
}
