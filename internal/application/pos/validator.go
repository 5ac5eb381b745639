package pos

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/clinivet/pos-api/internal/application/dto"
	"github.com/clinivet/pos-api/internal/domain"
	"github.com/clinivet/pos-api/internal/domain/entity"
)

// SaleLineInput línea de venta normalizada.
type SaleLineInput struct {
	InventoryItemID string
	Quantity        int
	UnitPrice       decimal.Decimal
}

// SaleInput solicitud de venta normalizada y tipada. Es lo único que el
// resto del motor acepta: ningún componente aguas abajo ve datos sin tipar.
type SaleInput struct {
	ClientID      string
	UserID        string
	PaymentMethod string
	Notes         string
	Items         []SaleLineInput
}

// ValidateSaleRequest valida estructuralmente la solicitud y la normaliza.
// Una línea malformada rechaza la solicitud completa. Sin efectos secundarios.
func ValidateSaleRequest(in dto.CreateSaleRequest) (*SaleInput, error) {
	if in.ClientID == "" {
		return nil, fmt.Errorf("clientId: %w", domain.ErrMissingFields)
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrNoItems
	}
	if in.PaymentMethod == "" {
		return nil, fmt.Errorf("paymentMethod: %w", domain.ErrMissingFields)
	}
	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, fmt.Errorf("%q: %w", in.PaymentMethod, domain.ErrInvalidPayment)
	}

	items := make([]SaleLineInput, 0, len(in.Items))
	for i, it := range in.Items {
		if it.InventoryItemID == "" {
			return nil, fmt.Errorf("items[%d].inventoryItemId: %w", i, domain.ErrInvalidInput)
		}
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("items[%d].quantity debe ser positivo: %w", i, domain.ErrInvalidInput)
		}
		if it.UnitPrice.LessThan(decimal.Zero) {
			return nil, fmt.Errorf("items[%d].unitPrice no puede ser negativo: %w", i, domain.ErrInvalidInput)
		}
		items = append(items, SaleLineInput{
			InventoryItemID: it.InventoryItemID,
			Quantity:        it.Quantity,
			UnitPrice:       it.UnitPrice,
		})
	}

	return &SaleInput{
		ClientID:      in.ClientID,
		PaymentMethod: in.PaymentMethod,
		Notes:         in.Notes,
		Items:         items,
	}, nil
}
