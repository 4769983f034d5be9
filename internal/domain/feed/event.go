package feed

import "encoding/json"

// Tablas observadas por el canal de cambios.
const (
	TableProducts   = "products"
	TableVariations = "variations"
	TableBills      = "bills"
	TablePurchases  = "purchases"
	TableCategories = "categories"
)

// Tipos de evento de fila.
const (
	OpInsert = "INSERT"
	OpUpdate = "UPDATE"
	OpDelete = "DELETE"
)

// Event es una notificación de cambio a nivel de fila. Record lleva la imagen
// nueva de la fila (INSERT/UPDATE) en columnas snake_case; OldKey lleva la
// clave primaria de la fila anterior (DELETE): id, o name para categories.
type Event struct {
	Table  string          `json:"table"`
	Op     string          `json:"type"`
	Record json.RawMessage `json:"record,omitempty"`
	OldKey string          `json:"-"`
}

// envelope es el payload tal como lo emite el trigger pg_notify.
type envelope struct {
	Table  string          `json:"table"`
	Op     string          `json:"type"`
	Record json.RawMessage `json:"record"`
	Old    struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"old"`
}

// Decode parsea el payload JSON de una notificación en un Event.
func Decode(payload []byte) (Event, error) {
	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return Event{}, err
	}
	ev := Event{
		Table:  env.Table,
		Op:     env.Op,
		Record: env.Record,
	}
	ev.OldKey = env.Old.ID
	if ev.OldKey == "" {
		ev.OldKey = env.Old.Name
	}
	return ev, nil
}
