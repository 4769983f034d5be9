package repository

import "github.com/jhoicas/muebleria-pos/internal/domain/entity"

// BillRepository define el puerto de persistencia para Bill (DIP).
// Las ventas son un ledger append-only: no hay Update. Delete existe solo
// para la compensación de un commit a medias (la fila ya insertada se quita
// cuando la escritura de stock que la acompaña falla); ningún endpoint lo
// expone.
type BillRepository interface {
	Create(bill *entity.Bill) error
	Delete(id string) error
	List() ([]entity.Bill, error)
}

// PurchaseRepository define el puerto de persistencia para Purchase (DIP).
// Mismo contrato que BillRepository: Delete es solo compensatorio.
type PurchaseRepository interface {
	Create(purchase *entity.Purchase) error
	Delete(id string) error
	List() ([]entity.Purchase, error)
}
