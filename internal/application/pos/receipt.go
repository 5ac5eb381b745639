package pos

import (
	"context"

	"github.com/clinivet/pos-api/internal/domain"
	"github.com/clinivet/pos-api/internal/domain/repository"
)

// ReceiptUseCase genera el recibo imprimible de una venta confirmada.
type ReceiptUseCase struct {
	saleRepo   repository.SaleRepository
	clientRepo repository.ClientRepository
	itemRepo   repository.InventoryItemRepository
	generator  ReceiptGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(
	saleRepo repository.SaleRepository,
	clientRepo repository.ClientRepository,
	itemRepo repository.InventoryItemRepository,
	generator ReceiptGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{saleRepo: saleRepo, clientRepo: clientRepo, itemRepo: itemRepo, generator: generator}
}

// Generate arma el recibo de la venta: resuelve cliente y nombres de producto
// y delega el render al generador.
func (uc *ReceiptUseCase) Generate(ctx context.Context, saleID string) ([]byte, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.saleRepo.GetItemsBySaleID(saleID)
	if err != nil {
		return nil, err
	}
	client, err := uc.clientRepo.GetByID(sale.ClientID)
	if err != nil {
		return nil, err
	}

	lines := make([]ReceiptLine, 0, len(items))
	for _, it := range items {
		name := it.InventoryItemID
		if item, err := uc.itemRepo.GetByID(it.InventoryItemID); err == nil && item != nil {
			name = item.Name
		}
		lines = append(lines, ReceiptLine{
			Name:      name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Subtotal:  it.Subtotal,
		})
	}
	return uc.generator.GenerateReceipt(ctx, sale, client, lines)
}
