package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/clinivet/pos-api/internal/domain/entity"
	"github.com/clinivet/pos-api/internal/domain/repository"
)

var _ repository.MovementHistoryRepository = (*MovementHistoryRepo)(nil)

// MovementHistoryRepo implementación sobre PostgreSQL (usable con pool o tx).
// Solo inserta y lista: el historial es inmutable.
type MovementHistoryRepo struct {
	q Querier
}

// NewMovementHistoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementHistoryRepository(q Querier) *MovementHistoryRepo {
	return &MovementHistoryRepo{q: q}
}

// Create persiste un movimiento del historial.
func (r *MovementHistoryRepo) Create(movement *entity.MovementHistory) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movement_history (id, inventory_item_id, type, quantity, reason, user_id, related_record_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.InventoryItemID, movement.Type, movement.Quantity,
		movement.Reason, movement.UserID, nullIfEmpty(movement.RelatedRecordID), movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement history: %w", err)
	}
	return nil
}

// ListByItem lista los movimientos de un producto, más recientes primero.
func (r *MovementHistoryRepo) ListByItem(inventoryItemID string, limit, offset int) ([]*entity.MovementHistory, error) {
	query := `
		SELECT id, inventory_item_id, type, quantity, reason, user_id, COALESCE(related_record_id, ''), created_at
		FROM movement_history WHERE inventory_item_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, inventoryItemID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movement history: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovementHistory
	for rows.Next() {
		var m entity.MovementHistory
		if err := rows.Scan(&m.ID, &m.InventoryItemID, &m.Type, &m.Quantity,
			&m.Reason, &m.UserID, &m.RelatedRecordID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
