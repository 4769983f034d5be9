package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/muebleria-pos/internal/domain"
	"github.com/jhoicas/muebleria-pos/internal/domain/entity"
	"github.com/jhoicas/muebleria-pos/internal/domain/repository"
)

var _ repository.BillRepository = (*BillRepo)(nil)

// BillRepo implementación del puerto BillRepository sobre PostgreSQL.
// Las líneas de la venta se guardan como snapshot JSON en la columna items.
type BillRepo struct {
	q Querier
}

// NewBillRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBillRepository(q Querier) *BillRepo {
	return &BillRepo{q: q}
}

// Create persiste una venta nueva. No existe Update: el ledger es append-only.
func (r *BillRepo) Create(bill *entity.Bill) error {
	items, err := json.Marshal(bill.Items)
	if err != nil {
		return fmt.Errorf("marshal bill items: %w", err)
	}
	query := `
		INSERT INTO bills (id, customer_name, contact_no, date, items, total_amount, discount, final_amount, amount_received, amount_pending, payment_mode, type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err = r.q.Exec(context.Background(), query,
		bill.ID, bill.CustomerName, bill.ContactNo, bill.Date, items,
		bill.TotalAmount, bill.Discount, bill.FinalAmount,
		bill.AmountReceived, bill.AmountPending, bill.PaymentMode, entity.TypeSale,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert bill: %w", err)
	}
	return nil
}

// Delete quita una venta por id. Solo lo usa la compensación de un commit a
// medias; el ledger sigue siendo append-only de cara a la API.
func (r *BillRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM bills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete bill: %w", err)
	}
	return nil
}

// List devuelve todas las ventas en orden cronológico.
func (r *BillRepo) List() ([]entity.Bill, error) {
	query := `
		SELECT id, customer_name, contact_no, date, items, total_amount, discount, final_amount, amount_received, amount_pending, payment_mode
		FROM bills ORDER BY date`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	defer rows.Close()
	var list []entity.Bill
	for rows.Next() {
		var b entity.Bill
		var items []byte
		if err := rows.Scan(&b.ID, &b.CustomerName, &b.ContactNo, &b.Date, &items,
			&b.TotalAmount, &b.Discount, &b.FinalAmount,
			&b.AmountReceived, &b.AmountPending, &b.PaymentMode); err != nil {
			return nil, fmt.Errorf("scan bill: %w", err)
		}
		if len(items) > 0 {
			if err := json.Unmarshal(items, &b.Items); err != nil {
				return nil, fmt.Errorf("unmarshal bill items: %w", err)
			}
		}
		list = append(list, b)
	}
	return list, rows.Err()
}
