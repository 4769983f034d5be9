package pdf_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/muebleria-pos/internal/domain/entity"
	"github.com/jhoicas/muebleria-pos/internal/infrastructure/pdf"
)

func d(v string) decimal.Decimal {
	dec, _ := decimal.NewFromString(v)
	return dec
}

func billDePrueba() *entity.Bill {
	items := []entity.CartItem{
		entity.NewCartItem("p1", "v1", "Plywood", "Natural", 3, d("100")),
		entity.NewCartItem("p2", "v2", "Office Chair", "Negro", 1, d("250")),
	}
	return &entity.Bill{
		ID:             "8f2b1c4d-0000-0000-0000-000000000000",
		CustomerName:   "Carlos Díaz",
		ContactNo:      "3001234567",
		Date:           time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Items:          items,
		TotalAmount:    d("550"),
		Discount:       d("50"),
		FinalAmount:    d("500"),
		AmountReceived: d("300"),
		AmountPending:  d("200"),
		PaymentMode:    entity.PaymentCash,
	}
}

// Caso 1: El recibo se genera sin error y produce un documento PDF real.
func TestGenerate_ProduceDocumentoPDF(t *testing.T) {
	gen := pdf.NewReceiptGenerator("Mueblería El Roble")

	got, err := gen.Generate(billDePrueba())

	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, "%PDF", string(got[:4]), "los bytes deben empezar con la firma PDF")
}

// Caso 2: Una venta sin contacto y con línea de variación desconocida (nombres
// vacíos) igual genera recibo; la línea huérfana se describe por su id.
func TestGenerate_LineaSinNombres(t *testing.T) {
	bill := billDePrueba()
	bill.ContactNo = ""
	bill.Items = append(bill.Items, entity.NewCartItem("", "v-fantasma", "", "", 2, d("80")))

	gen := pdf.NewReceiptGenerator("Mueblería El Roble")
	got, err := gen.Generate(bill)

	require.NoError(t, err)
	assert.NotEmpty(t, got)
}
