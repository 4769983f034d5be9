package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/muebleria-pos/internal/domain"
	"github.com/jhoicas/muebleria-pos/internal/domain/entity"
	"github.com/jhoicas/muebleria-pos/internal/domain/repository"
)

var _ repository.VariationRepository = (*VariationRepo)(nil)

// VariationRepo implementación del puerto VariationRepository sobre PostgreSQL.
type VariationRepo struct {
	q Querier
}

// NewVariationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVariationRepository(q Querier) *VariationRepo {
	return &VariationRepo{q: q}
}

const variationInsert = `
	INSERT INTO variations (id, product_id, name, stock, purchase_price, selling_price, image, color)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

// Create persiste una nueva variación.
func (r *VariationRepo) Create(v *entity.Variation) error {
	_, err := r.q.Exec(context.Background(), variationInsert,
		v.ID, v.ProductID, v.Name, v.Stock, v.PurchasePrice, v.SellingPrice, v.Image, v.Color,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert variation: %w", err)
	}
	return nil
}

// CreateBatch inserta las variaciones iniciales de un producto nuevo.
func (r *VariationRepo) CreateBatch(vars []entity.Variation) error {
	for i := range vars {
		if err := r.Create(&vars[i]); err != nil {
			return err
		}
	}
	return nil
}

// Update reemplaza por id el conjunto completo de campos mapeados.
func (r *VariationRepo) Update(v *entity.Variation) error {
	query := `
		UPDATE variations SET name = $2, stock = $3, purchase_price = $4, selling_price = $5, image = $6, color = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.Name, v.Stock, v.PurchasePrice, v.SellingPrice, v.Image, v.Color,
	)
	if err != nil {
		return fmt.Errorf("update variation: %w", err)
	}
	return nil
}

// UpdateStock escribe solo la columna stock (descuento por venta).
func (r *VariationRepo) UpdateStock(id string, stock int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE variations SET stock = $2 WHERE id = $1`, id, stock)
	if err != nil {
		return fmt.Errorf("update variation stock: %w", err)
	}
	return nil
}

// UpdateStockAndPrice escribe stock y purchase_price (entrada por compra).
func (r *VariationRepo) UpdateStockAndPrice(id string, stock int, purchasePrice decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE variations SET stock = $2, purchase_price = $3 WHERE id = $1`,
		id, stock, purchasePrice)
	if err != nil {
		return fmt.Errorf("update variation stock/price: %w", err)
	}
	return nil
}

// List devuelve todas las variaciones.
func (r *VariationRepo) List() ([]entity.Variation, error) {
	query := `
		SELECT id, product_id, name, stock, purchase_price, selling_price, image, color
		FROM variations ORDER BY product_id, name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list variations: %w", err)
	}
	defer rows.Close()
	var list []entity.Variation
	for rows.Next() {
		var v entity.Variation
		if err := rows.Scan(&v.ID, &v.ProductID, &v.Name, &v.Stock,
			&v.PurchasePrice, &v.SellingPrice, &v.Image, &v.Color); err != nil {
			return nil, fmt.Errorf("scan variation: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}
