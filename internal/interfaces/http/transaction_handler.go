package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/muebleria-pos/internal/application/billing"
	"github.com/jhoicas/muebleria-pos/internal/application/dto"
	"github.com/jhoicas/muebleria-pos/internal/application/store"
	"github.com/jhoicas/muebleria-pos/internal/infrastructure/pdf"
)

// TransactionHandler maneja ventas, compras y el recibo imprimible.
type TransactionHandler struct {
	sale     *billing.CommitSaleUseCase
	purchase *billing.CommitPurchaseUseCase
	store    *store.Store
	receipt  *pdf.ReceiptGenerator
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(sale *billing.CommitSaleUseCase, purchase *billing.CommitPurchaseUseCase, st *store.Store, receipt *pdf.ReceiptGenerator) *TransactionHandler {
	return &TransactionHandler{sale: sale, purchase: purchase, store: st, receipt: receipt}
}

// ListSales devuelve el ledger de ventas del estado local.
func (h *TransactionHandler) ListSales(c *fiber.Ctx) error {
	snap := h.store.Snapshot()
	out := make([]dto.BillResponse, 0, len(snap.Bills))
	for i := range snap.Bills {
		out = append(out, *dto.ToBillResponse(&snap.Bills[i]))
	}
	return c.JSON(out)
}

// CreateSale confirma una venta desde el carrito.
func (h *TransactionHandler) CreateSale(c *fiber.Ctx) error {
	var in dto.CreateBillRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	bill, err := h.sale.Execute(in)
	if err != nil {
		return writeUseCaseError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToBillResponse(bill))
}

// Receipt genera el PDF del recibo de la venta indicada.
func (h *TransactionHandler) Receipt(c *fiber.Ctx) error {
	id := c.Params("id")
	bill, ok := h.store.BillByID(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
	}
	data, err := h.receipt.Generate(&bill)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="recibo-`+id+`.pdf"`)
	return c.Send(data)
}

// ListPurchases devuelve el ledger de compras del estado local.
func (h *TransactionHandler) ListPurchases(c *fiber.Ctx) error {
	snap := h.store.Snapshot()
	out := make([]dto.PurchaseResponse, 0, len(snap.Purchases))
	for i := range snap.Purchases {
		out = append(out, *dto.ToPurchaseResponse(&snap.Purchases[i]))
	}
	return c.JSON(out)
}

// CreatePurchase confirma una compra a proveedor desde el carrito.
func (h *TransactionHandler) CreatePurchase(c *fiber.Ctx) error {
	var in dto.CreatePurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	purchase, err := h.purchase.Execute(in)
	if err != nil {
		return writeUseCaseError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToPurchaseResponse(purchase))
}
