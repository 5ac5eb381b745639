package pos

import (
	"fmt"

	"github.com/clinivet/pos-api/internal/domain"
	"github.com/clinivet/pos-api/internal/domain/repository"
)

// CheckStock resuelve cada línea contra el inventario y verifica que haya
// stock suficiente. Cualquier línea que falle rechaza la solicitud completa.
// Se ejecuta dos veces: fuera de la transacción para responder rápido al
// cajero, y dentro de ella para cerrar la ventana de carrera antes del commit.
func CheckStock(itemRepo repository.InventoryItemRepository, lines []SaleLineInput) error {
	for _, l := range lines {
		item, err := itemRepo.GetByID(l.InventoryItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return fmt.Errorf("producto %s: %w", l.InventoryItemID, domain.ErrItemNotFound)
		}
		if item.Stock < l.Quantity {
			return fmt.Errorf("%s: disponible %d, solicitado %d: %w",
				item.Name, item.Stock, l.Quantity, domain.ErrInsufficientStock)
		}
	}
	return nil
}
