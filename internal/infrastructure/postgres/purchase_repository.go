package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/muebleria-pos/internal/domain"
	"github.com/jhoicas/muebleria-pos/internal/domain/entity"
	"github.com/jhoicas/muebleria-pos/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación del puerto PurchaseRepository sobre PostgreSQL.
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create persiste una compra nueva (ledger append-only, sin Update).
func (r *PurchaseRepo) Create(purchase *entity.Purchase) error {
	items, err := json.Marshal(purchase.Items)
	if err != nil {
		return fmt.Errorf("marshal purchase items: %w", err)
	}
	query := `
		INSERT INTO purchases (id, supplier_name, date, items, total_amount, amount_paid, amount_pending, payment_mode, type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = r.q.Exec(context.Background(), query,
		purchase.ID, purchase.SupplierName, purchase.Date, items,
		purchase.TotalAmount, purchase.AmountPaid, purchase.AmountPending,
		purchase.PaymentMode, entity.TypePurchase,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

// Delete quita una compra por id. Solo lo usa la compensación de un commit a
// medias; el ledger sigue siendo append-only de cara a la API.
func (r *PurchaseRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM purchases WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete purchase: %w", err)
	}
	return nil
}

// List devuelve todas las compras en orden cronológico.
func (r *PurchaseRepo) List() ([]entity.Purchase, error) {
	query := `
		SELECT id, supplier_name, date, items, total_amount, amount_paid, amount_pending, payment_mode
		FROM purchases ORDER BY date`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	var list []entity.Purchase
	for rows.Next() {
		var p entity.Purchase
		var items []byte
		if err := rows.Scan(&p.ID, &p.SupplierName, &p.Date, &items,
			&p.TotalAmount, &p.AmountPaid, &p.AmountPending, &p.PaymentMode); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		if len(items) > 0 {
			if err := json.Unmarshal(items, &p.Items); err != nil {
				return nil, fmt.Errorf("unmarshal purchase items: %w", err)
			}
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
