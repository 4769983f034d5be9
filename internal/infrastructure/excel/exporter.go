// Package excel exporta el ledger de ventas y compras a un libro XLSX.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/muebleria-pos/internal/application/store"
	"github.com/jhoicas/muebleria-pos/internal/domain/entity"
)

const (
	sheetSales     = "Ventas"
	sheetPurchases = "Compras"
)

// Exporter genera el archivo XLSX de reportes.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter { return &Exporter{} }

// Export arma un libro con una hoja de ventas y otra de compras a partir del
// snapshot del estado local y devuelve sus bytes.
func (e *Exporter) Export(snap store.Snapshot) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetSales)
	if _, err := f.NewSheet(sheetPurchases); err != nil {
		return nil, fmt.Errorf("excel: crear hoja de compras: %w", err)
	}

	if err := writeSales(f, snap.Bills); err != nil {
		return nil, err
	}
	if err := writePurchases(f, snap.Purchases); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSales(f *excelize.File, bills []entity.Bill) error {
	headers := []string{"Fecha", "Cliente", "Contacto", "Artículos", "Total", "Descuento", "A pagar", "Recibido", "Pendiente", "Modo de pago"}
	if err := writeHeader(f, sheetSales, headers); err != nil {
		return err
	}
	for i, b := range bills {
		rowIdx := i + 2
		values := []interface{}{
			b.Date.Format("2006-01-02"),
			b.CustomerName,
			b.ContactNo,
			itemSummary(b.Items),
			b.TotalAmount.InexactFloat64(),
			b.Discount.InexactFloat64(),
			b.FinalAmount.InexactFloat64(),
			b.AmountReceived.InexactFloat64(),
			b.AmountPending.InexactFloat64(),
			b.PaymentMode,
		}
		if err := writeRow(f, sheetSales, rowIdx, values); err != nil {
			return err
		}
	}
	return nil
}

func writePurchases(f *excelize.File, purchases []entity.Purchase) error {
	headers := []string{"Fecha", "Proveedor", "Artículos", "Total", "Pagado", "Pendiente", "Modo de pago"}
	if err := writeHeader(f, sheetPurchases, headers); err != nil {
		return err
	}
	for i, p := range purchases {
		rowIdx := i + 2
		values := []interface{}{
			p.Date.Format("2006-01-02"),
			p.SupplierName,
			itemSummary(p.Items),
			p.TotalAmount.InexactFloat64(),
			p.AmountPaid.InexactFloat64(),
			p.AmountPending.InexactFloat64(),
			p.PaymentMode,
		}
		if err := writeRow(f, sheetPurchases, rowIdx, values); err != nil {
			return err
		}
	}
	return nil
}

func writeHeader(f *excelize.File, sheet string, headers []string) error {
	cells := make([]interface{}, len(headers))
	for i, h := range headers {
		cells[i] = h
	}
	return writeRow(f, sheet, 1, cells)
}

func writeRow(f *excelize.File, sheet string, rowIdx int, values []interface{}) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, rowIdx)
		if err != nil {
			return fmt.Errorf("excel: celda (%d,%d): %w", col+1, rowIdx, err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("excel: escribir %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}

// itemSummary condensa las líneas en una celda legible: "3x Silla — Alta (2x ...)".
func itemSummary(items []entity.CartItem) string {
	out := ""
	for i, it := range items {
		if i > 0 {
			out += "; "
		}
		name := it.ProductName
		if it.VariationName != "" {
			name += " — " + it.VariationName
		}
		if name == "" {
			name = it.VariationID
		}
		out += fmt.Sprintf("%dx %s", it.Quantity, name)
	}
	return out
}
