package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/muebleria-pos/internal/domain/entity"
)

func d(v string) decimal.Decimal {
	dec, _ := decimal.NewFromString(v)
	return dec
}

// Caso 1: Los cuatro modos del enumerado son válidos; cualquier otro valor no.
func TestValidPaymentMode(t *testing.T) {
	for _, mode := range []string{entity.PaymentCash, entity.PaymentOnline, entity.PaymentCheque, entity.PaymentCredit} {
		assert.True(t, entity.ValidPaymentMode(mode), "modo %s debe ser válido", mode)
	}
	assert.False(t, entity.ValidPaymentMode("cash"), "el enumerado distingue mayúsculas")
	assert.False(t, entity.ValidPaymentMode("Barter"))
	assert.False(t, entity.ValidPaymentMode(""))
}

// Caso 2: FinalAfterDiscount resta el descuento y nunca baja de cero.
func TestFinalAfterDiscount(t *testing.T) {
	assert.True(t, entity.FinalAfterDiscount(d("500"), d("50")).Equal(d("450")))
	assert.True(t, entity.FinalAfterDiscount(d("100"), d("100")).Equal(decimal.Zero))
	assert.True(t, entity.FinalAfterDiscount(d("100"), d("150")).Equal(decimal.Zero),
		"descuento mayor al total se trunca en cero")
}

// Caso 3: PendingAmount trunca en cero cuando se recibe de más.
func TestPendingAmount(t *testing.T) {
	assert.True(t, entity.PendingAmount(d("400"), d("150")).Equal(d("250")))
	assert.True(t, entity.PendingAmount(d("400"), d("400")).Equal(decimal.Zero))
	assert.True(t, entity.PendingAmount(d("400"), d("999")).Equal(decimal.Zero),
		"un pago en exceso no genera saldo negativo")
}
