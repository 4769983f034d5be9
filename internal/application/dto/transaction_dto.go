package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/muebleria-pos/internal/domain/entity"
)

// CartItemRequest una línea del carrito de venta o compra.
type CartItemRequest struct {
	VariationID string          `json:"variationId"`
	Quantity    int             `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
}

// CreateBillRequest datos para confirmar una venta.
type CreateBillRequest struct {
	CustomerName   string            `json:"customerName"`
	ContactNo      string            `json:"contactNo"`
	Date           time.Time         `json:"date"`
	Items          []CartItemRequest `json:"items"`
	Discount       decimal.Decimal   `json:"discount"`
	AmountReceived decimal.Decimal   `json:"amountReceived"`
	PaymentMode    string            `json:"paymentMode"`
}

// CreatePurchaseRequest datos para confirmar una compra a proveedor.
type CreatePurchaseRequest struct {
	SupplierName string            `json:"supplierName"`
	Date         time.Time         `json:"date"`
	Items        []CartItemRequest `json:"items"`
	AmountPaid   decimal.Decimal   `json:"amountPaid"`
	PaymentMode  string            `json:"paymentMode"`
}

// CartItemResponse snapshot de línea tal como quedó en la transacción.
type CartItemResponse struct {
	ProductID     string          `json:"productId"`
	VariationID   string          `json:"variationId"`
	ProductName   string          `json:"productName"`
	VariationName string          `json:"variationName"`
	Quantity      int             `json:"quantity"`
	Rate          decimal.Decimal `json:"rate"`
	Total         decimal.Decimal `json:"total"`
}

// BillResponse venta persistida.
type BillResponse struct {
	ID             string             `json:"id"`
	CustomerName   string             `json:"customerName"`
	ContactNo      string             `json:"contactNo,omitempty"`
	Date           time.Time          `json:"date"`
	Items          []CartItemResponse `json:"items"`
	TotalAmount    decimal.Decimal    `json:"totalAmount"`
	Discount       decimal.Decimal    `json:"discount"`
	FinalAmount    decimal.Decimal    `json:"finalAmount"`
	AmountReceived decimal.Decimal    `json:"amountReceived"`
	AmountPending  decimal.Decimal    `json:"amountPending"`
	PaymentMode    string             `json:"paymentMode"`
	Type           string             `json:"type"`
}

// PurchaseResponse compra persistida.
type PurchaseResponse struct {
	ID            string             `json:"id"`
	SupplierName  string             `json:"supplierName"`
	Date          time.Time          `json:"date"`
	Items         []CartItemResponse `json:"items"`
	TotalAmount   decimal.Decimal    `json:"totalAmount"`
	AmountPaid    decimal.Decimal    `json:"amountPaid"`
	AmountPending decimal.Decimal    `json:"amountPending"`
	PaymentMode   string             `json:"paymentMode"`
	Type          string             `json:"type"`
}

// ToBillResponse mapea la entidad a su respuesta HTTP.
func ToBillResponse(b *entity.Bill) *BillResponse {
	if b == nil {
		return nil
	}
	return &BillResponse{
		ID:             b.ID,
		CustomerName:   b.CustomerName,
		ContactNo:      b.ContactNo,
		Date:           b.Date,
		Items:          toItemResponses(b.Items),
		TotalAmount:    b.TotalAmount,
		Discount:       b.Discount,
		FinalAmount:    b.FinalAmount,
		AmountReceived: b.AmountReceived,
		AmountPending:  b.AmountPending,
		PaymentMode:    b.PaymentMode,
		Type:           entity.TypeSale,
	}
}

// ToPurchaseResponse mapea la entidad a su respuesta HTTP.
func ToPurchaseResponse(p *entity.Purchase) *PurchaseResponse {
	if p == nil {
		return nil
	}
	return &PurchaseResponse{
		ID:            p.ID,
		SupplierName:  p.SupplierName,
		Date:          p.Date,
		Items:         toItemResponses(p.Items),
		TotalAmount:   p.TotalAmount,
		AmountPaid:    p.AmountPaid,
		AmountPending: p.AmountPending,
		PaymentMode:   p.PaymentMode,
		Type:          entity.TypePurchase,
	}
}

func toItemResponses(items []entity.CartItem) []CartItemResponse {
	out := make([]CartItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, CartItemResponse{
			ProductID:     it.ProductID,
			VariationID:   it.VariationID,
			ProductName:   it.ProductName,
			VariationName: it.VariationName,
			Quantity:      it.Quantity,
			Rate:          it.Rate,
			Total:         it.Total,
		})
	}
	return out
}
