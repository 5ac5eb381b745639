package repository

import "github.com/clinivet/pos-api/internal/domain/entity"

// MovementHistoryRepository define el puerto del libro de movimientos.
// Solo inserta y lista: las filas son inmutables (integridad de auditoría).
type MovementHistoryRepository interface {
	Create(movement *entity.MovementHistory) error
	ListByItem(inventoryItemID string, limit, offset int) ([]*entity.MovementHistory, error)
}
