package pos

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/clinivet/pos-api/internal/domain/entity"
	"github.com/clinivet/pos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de ventas:
// la venta, sus líneas, los descuentos de stock y el historial se confirman
// o se revierten como una sola unidad.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		itemRepo repository.InventoryItemRepository,
		movRepo repository.MovementHistoryRepository,
	) error) error
}

// ReceiptLine línea del recibo con el nombre del producto ya resuelto.
type ReceiptLine struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

// ReceiptGenerator genera la representación imprimible de una venta.
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, sale *entity.Sale, client *entity.Client, lines []ReceiptLine) ([]byte, error)
}
