package dto

import "github.com/shopspring/decimal"

// PaymentModeTotal monto acumulado por modo de pago.
type PaymentModeTotal struct {
	Mode  string          `json:"mode"`
	Total decimal.Decimal `json:"total"`
}

// TopVariation variación ordenada por unidades vendidas.
type TopVariation struct {
	VariationID   string          `json:"variationId"`
	ProductName   string          `json:"productName"`
	VariationName string          `json:"variationName"`
	UnitsSold     int             `json:"unitsSold"`
	Revenue       decimal.Decimal `json:"revenue"`
}

// SummaryReportResponse agregados de ventas y compras sobre el estado local.
type SummaryReportResponse struct {
	SalesCount       int                `json:"salesCount"`
	SalesTotal       decimal.Decimal    `json:"salesTotal"`
	SalesReceived    decimal.Decimal    `json:"salesReceived"`
	SalesPending     decimal.Decimal    `json:"salesPending"`
	PurchasesCount   int                `json:"purchasesCount"`
	PurchasesTotal   decimal.Decimal    `json:"purchasesTotal"`
	PurchasesPaid    decimal.Decimal    `json:"purchasesPaid"`
	PurchasesPending decimal.Decimal    `json:"purchasesPending"`
	SalesByMode      []PaymentModeTotal `json:"salesByMode"`
	TopVariations    []TopVariation     `json:"topVariations"`
}
