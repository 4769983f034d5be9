package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Modos de pago aceptados en ventas y compras.
const (
	PaymentCash   = "Cash"
	PaymentOnline = "Online"
	PaymentCheque = "Cheque"
	PaymentCredit = "Credit"
)

// Tipos de transacción persistidos en la columna type.
const (
	TypeSale     = "SALE"
	TypePurchase = "PURCHASE"
)

// ValidPaymentMode indica si el modo de pago pertenece al enumerado.
func ValidPaymentMode(mode string) bool {
	switch mode {
	case PaymentCash, PaymentOnline, PaymentCheque, PaymentCredit:
		return true
	}
	return false
}

// Bill es una venta: ledger append-only, nunca se edita después de creada.
// AmountPending = max(0, FinalAmount - AmountReceived).
type Bill struct {
	ID             string
	CustomerName   string
	ContactNo      string // opcional
	Date           time.Time
	Items          []CartItem
	TotalAmount    decimal.Decimal
	Discount       decimal.Decimal
	FinalAmount    decimal.Decimal // max(0, TotalAmount - Discount)
	AmountReceived decimal.Decimal
	AmountPending  decimal.Decimal
	PaymentMode    string
}

// Purchase es una compra a proveedor: estructura paralela a Bill pero modela
// entrada de stock en vez de salida.
type Purchase struct {
	ID            string
	SupplierName  string
	Date          time.Time
	Items         []CartItem
	TotalAmount   decimal.Decimal
	AmountPaid    decimal.Decimal
	AmountPending decimal.Decimal
	PaymentMode   string
}

// PendingAmount calcula el saldo pendiente de una transacción: nunca negativo.
func PendingAmount(finalAmount, received decimal.Decimal) decimal.Decimal {
	pending := finalAmount.Sub(received)
	if pending.IsNegative() {
		return decimal.Zero
	}
	return pending
}

// FinalAfterDiscount calcula el monto final tras descuento: nunca negativo.
func FinalAfterDiscount(total, discount decimal.Decimal) decimal.Decimal {
	final := total.Sub(discount)
	if final.IsNegative() {
		return decimal.Zero
	}
	return final
}
