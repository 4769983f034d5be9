package postgres

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/muebleria-pos/internal/domain/entity"
)

// Traducción entre la forma de fila del backend (columnas snake_case, tal
// como las serializa row_to_json en los payloads del canal de cambios) y las
// entidades en memoria (camelCase). Los campos son punteros: en un evento
// UPDATE solo se sobreescribe lo presente en el payload y los campos locales
// ausentes sobreviven al merge.

// ProductRow es la imagen de fila de products.
type ProductRow struct {
	ID                *string          `json:"id"`
	Name              *string          `json:"name"`
	Category          *string          `json:"category"`
	Image             *string          `json:"image"`
	BasePurchasePrice *decimal.Decimal `json:"base_purchase_price"`
	BaseSellingPrice  *decimal.Decimal `json:"base_selling_price"`
}

// DecodeProductRow parsea una imagen de fila JSON de products.
func DecodeProductRow(raw []byte) (ProductRow, error) {
	var r ProductRow
	if err := json.Unmarshal(raw, &r); err != nil {
		return ProductRow{}, fmt.Errorf("decode product row: %w", err)
	}
	return r, nil
}

// Entity materializa la fila completa como entidad (INSERT).
func (r ProductRow) Entity() entity.Product {
	var p entity.Product
	r.ApplyTo(&p)
	return p
}

// ApplyTo sobreescribe en p solo los campos presentes en la fila (UPDATE).
func (r ProductRow) ApplyTo(p *entity.Product) {
	if r.ID != nil {
		p.ID = *r.ID
	}
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Category != nil {
		p.Category = *r.Category
	}
	if r.Image != nil {
		p.Image = *r.Image
	}
	if r.BasePurchasePrice != nil {
		p.BasePurchasePrice = decimal.NullDecimal{Decimal: *r.BasePurchasePrice, Valid: true}
	}
	if r.BaseSellingPrice != nil {
		p.BaseSellingPrice = decimal.NullDecimal{Decimal: *r.BaseSellingPrice, Valid: true}
	}
}

// VariationRow es la imagen de fila de variations.
type VariationRow struct {
	ID            *string          `json:"id"`
	ProductID     *string          `json:"product_id"`
	Name          *string          `json:"name"`
	Stock         *int             `json:"stock"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
	SellingPrice  *decimal.Decimal `json:"selling_price"`
	Image         *string          `json:"image"`
	Color         *string          `json:"color"`
}

// DecodeVariationRow parsea una imagen de fila JSON de variations.
func DecodeVariationRow(raw []byte) (VariationRow, error) {
	var r VariationRow
	if err := json.Unmarshal(raw, &r); err != nil {
		return VariationRow{}, fmt.Errorf("decode variation row: %w", err)
	}
	return r, nil
}

// Entity materializa la fila completa como entidad (INSERT).
func (r VariationRow) Entity() entity.Variation {
	var v entity.Variation
	r.ApplyTo(&v)
	return v
}

// ApplyTo sobreescribe en v solo los campos presentes en la fila (UPDATE).
func (r VariationRow) ApplyTo(v *entity.Variation) {
	if r.ID != nil {
		v.ID = *r.ID
	}
	if r.ProductID != nil {
		v.ProductID = *r.ProductID
	}
	if r.Name != nil {
		v.Name = *r.Name
	}
	if r.Stock != nil {
		v.Stock = *r.Stock
	}
	if r.PurchasePrice != nil {
		v.PurchasePrice = *r.PurchasePrice
	}
	if r.SellingPrice != nil {
		v.SellingPrice = *r.SellingPrice
	}
	if r.Image != nil {
		v.Image = *r.Image
	}
	if r.Color != nil {
		v.Color = *r.Color
	}
}

// BillRow es la imagen de fila de bills. Items viaja como JSON embebido.
type BillRow struct {
	ID             *string          `json:"id"`
	CustomerName   *string          `json:"customer_name"`
	ContactNo      *string          `json:"contact_no"`
	Date           *string          `json:"date"`
	Items          json.RawMessage  `json:"items"`
	TotalAmount    *decimal.Decimal `json:"total_amount"`
	Discount       *decimal.Decimal `json:"discount"`
	FinalAmount    *decimal.Decimal `json:"final_amount"`
	AmountReceived *decimal.Decimal `json:"amount_received"`
	AmountPending  *decimal.Decimal `json:"amount_pending"`
	PaymentMode    *string          `json:"payment_mode"`
}

// DecodeBillRow parsea una imagen de fila JSON de bills.
func DecodeBillRow(raw []byte) (BillRow, error) {
	var r BillRow
	if err := json.Unmarshal(raw, &r); err != nil {
		return BillRow{}, fmt.Errorf("decode bill row: %w", err)
	}
	return r, nil
}

// Entity materializa la fila completa como entidad (INSERT).
func (r BillRow) Entity() (entity.Bill, error) {
	var b entity.Bill
	if err := r.ApplyTo(&b); err != nil {
		return entity.Bill{}, err
	}
	return b, nil
}

// ApplyTo sobreescribe en b solo los campos presentes en la fila (UPDATE).
func (r BillRow) ApplyTo(b *entity.Bill) error {
	if r.ID != nil {
		b.ID = *r.ID
	}
	if r.CustomerName != nil {
		b.CustomerName = *r.CustomerName
	}
	if r.ContactNo != nil {
		b.ContactNo = *r.ContactNo
	}
	if r.Date != nil {
		t, err := parseRowTime(*r.Date)
		if err != nil {
			return err
		}
		b.Date = t
	}
	if len(r.Items) > 0 {
		var items []entity.CartItem
		if err := json.Unmarshal(r.Items, &items); err != nil {
			return fmt.Errorf("decode bill items: %w", err)
		}
		b.Items = items
	}
	if r.TotalAmount != nil {
		b.TotalAmount = *r.TotalAmount
	}
	if r.Discount != nil {
		b.Discount = *r.Discount
	}
	if r.FinalAmount != nil {
		b.FinalAmount = *r.FinalAmount
	}
	if r.AmountReceived != nil {
		b.AmountReceived = *r.AmountReceived
	}
	if r.AmountPending != nil {
		b.AmountPending = *r.AmountPending
	}
	if r.PaymentMode != nil {
		b.PaymentMode = *r.PaymentMode
	}
	return nil
}

// PurchaseRow es la imagen de fila de purchases.
type PurchaseRow struct {
	ID            *string          `json:"id"`
	SupplierName  *string          `json:"supplier_name"`
	Date          *string          `json:"date"`
	Items         json.RawMessage  `json:"items"`
	TotalAmount   *decimal.Decimal `json:"total_amount"`
	AmountPaid    *decimal.Decimal `json:"amount_paid"`
	AmountPending *decimal.Decimal `json:"amount_pending"`
	PaymentMode   *string          `json:"payment_mode"`
}

// DecodePurchaseRow parsea una imagen de fila JSON de purchases.
func DecodePurchaseRow(raw []byte) (PurchaseRow, error) {
	var r PurchaseRow
	if err := json.Unmarshal(raw, &r); err != nil {
		return PurchaseRow{}, fmt.Errorf("decode purchase row: %w", err)
	}
	return r, nil
}

// Entity materializa la fila completa como entidad (INSERT).
func (r PurchaseRow) Entity() (entity.Purchase, error) {
	var p entity.Purchase
	if err := r.ApplyTo(&p); err != nil {
		return entity.Purchase{}, err
	}
	return p, nil
}

// ApplyTo sobreescribe en p solo los campos presentes en la fila (UPDATE).
func (r PurchaseRow) ApplyTo(p *entity.Purchase) error {
	if r.ID != nil {
		p.ID = *r.ID
	}
	if r.SupplierName != nil {
		p.SupplierName = *r.SupplierName
	}
	if r.Date != nil {
		t, err := parseRowTime(*r.Date)
		if err != nil {
			return err
		}
		p.Date = t
	}
	if len(r.Items) > 0 {
		var items []entity.CartItem
		if err := json.Unmarshal(r.Items, &items); err != nil {
			return fmt.Errorf("decode purchase items: %w", err)
		}
		p.Items = items
	}
	if r.TotalAmount != nil {
		p.TotalAmount = *r.TotalAmount
	}
	if r.AmountPaid != nil {
		p.AmountPaid = *r.AmountPaid
	}
	if r.AmountPending != nil {
		p.AmountPending = *r.AmountPending
	}
	if r.PaymentMode != nil {
		p.PaymentMode = *r.PaymentMode
	}
	return nil
}

// parseRowTime acepta los formatos de fecha que produce row_to_json para
// timestamptz, además de RFC 3339 plano.
func parseRowTime(s string) (time.Time, error) {
	for _, layout := range []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05.999999-07",
		"2006-01-02 15:04:05.999999-07",
		"2006-01-02",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("fecha de fila no reconocida: %q", s)
}
