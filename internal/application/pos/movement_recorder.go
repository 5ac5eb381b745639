package pos

import (
	"time"

	"github.com/google/uuid"

	"github.com/clinivet/pos-api/internal/domain/entity"
	"github.com/clinivet/pos-api/internal/domain/repository"
)

// MovementRecorder anota en el historial de movimientos las salidas de stock
// de una venta: una fila por línea, cantidad en negativo, con referencia a la
// venta que la originó. Las filas nunca se actualizan ni se borran.
type MovementRecorder struct{}

// RecordSale inserta los movimientos de la venta usando el repositorio
// recibido, que debe estar atado a la misma transacción que la venta.
func (MovementRecorder) RecordSale(
	movRepo repository.MovementHistoryRepository,
	sale *entity.Sale,
	items []*entity.SaleItem,
	now time.Time,
) error {
	for _, it := range items {
		mov := &entity.MovementHistory{
			ID:              uuid.New().String(),
			InventoryItemID: it.InventoryItemID,
			Type:            entity.MovementTypeSale,
			Quantity:        -it.Quantity,
			Reason:          entity.ReasonPOSSale,
			UserID:          sale.UserID,
			RelatedRecordID: sale.ID,
			CreatedAt:       now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
	}
	return nil
}
