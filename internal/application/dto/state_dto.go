package dto

import "github.com/jhoicas/muebleria-pos/internal/application/store"

// StateResponse es el estado local completo que consume la interfaz: la misma
// vista que el operador ve tras el login o una recarga manual.
type StateResponse struct {
	Products   []ProductResponse  `json:"products"`
	Bills      []BillResponse     `json:"bills"`
	Purchases  []PurchaseResponse `json:"purchases"`
	Categories []string           `json:"categories"`
}

// ToStateResponse arma la vista completa anidando variaciones en su producto.
func ToStateResponse(snap store.Snapshot) *StateResponse {
	resp := &StateResponse{
		Products:   make([]ProductResponse, 0, len(snap.Products)),
		Bills:      make([]BillResponse, 0, len(snap.Bills)),
		Purchases:  make([]PurchaseResponse, 0, len(snap.Purchases)),
		Categories: snap.Categories,
	}
	for i := range snap.Products {
		resp.Products = append(resp.Products, *ToProductResponse(&snap.Products[i], snap.Variations))
	}
	for i := range snap.Bills {
		resp.Bills = append(resp.Bills, *ToBillResponse(&snap.Bills[i]))
	}
	for i := range snap.Purchases {
		resp.Purchases = append(resp.Purchases, *ToPurchaseResponse(&snap.Purchases[i]))
	}
	return resp
}
