package repository

// CategoryRepository define el puerto de persistencia para categorías.
// Las categorías son nombres planos, sin jerarquía: la clave es el nombre.
type CategoryRepository interface {
	Create(name string) error
	Delete(name string) error
	List() ([]string, error)
}
