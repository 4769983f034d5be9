package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/muebleria-pos/internal/application/dto"
	"github.com/jhoicas/muebleria-pos/internal/application/reports"
	"github.com/jhoicas/muebleria-pos/internal/application/store"
	"github.com/jhoicas/muebleria-pos/internal/infrastructure/excel"
)

// ReportHandler expone el resumen de agregados y la exportación XLSX.
type ReportHandler struct {
	reports  *reports.UseCase
	store    *store.Store
	exporter *excel.Exporter
}

// NewReportHandler construye el handler.
func NewReportHandler(rep *reports.UseCase, st *store.Store, exporter *excel.Exporter) *ReportHandler {
	return &ReportHandler{reports: rep, store: st, exporter: exporter}
}

// Summary devuelve los agregados de ventas y compras del estado local.
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	return c.JSON(h.reports.Summary())
}

// Export genera el libro XLSX con el ledger de ventas y compras.
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	data, err := h.exporter.Export(h.store.Snapshot())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := "reporte-" + time.Now().Format("2006-01-02") + ".xlsx"
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
