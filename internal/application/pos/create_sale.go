package pos

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/clinivet/pos-api/internal/application/dto"
	"github.com/clinivet/pos-api/internal/domain"
	"github.com/clinivet/pos-api/internal/domain/entity"
	dompos "github.com/clinivet/pos-api/internal/domain/pos"
	"github.com/clinivet/pos-api/internal/domain/repository"
)

// CreateSaleUseCase confirma ventas de caja en una sola transacción:
// valida la solicitud, pre-verifica stock, y dentro de la tx re-verifica,
// calcula el total, inserta la venta con sus líneas, descuenta stock con
// updates condicionales y anota el historial de movimientos. Commit o
// rollback completo; ningún lector observa estado parcial.
type CreateSaleUseCase struct {
	txRunner TxRunner
	itemRepo repository.InventoryItemRepository
	recorder MovementRecorder
}

// NewCreateSaleUseCase construye el caso de uso.
func NewCreateSaleUseCase(txRunner TxRunner, itemRepo repository.InventoryItemRepository) *CreateSaleUseCase {
	return &CreateSaleUseCase{txRunner: txRunner, itemRepo: itemRepo}
}

// CreateSale procesa una venta. userID es el usuario autenticado que opera la caja.
func (uc *CreateSaleUseCase) CreateSale(ctx context.Context, userID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	input, err := ValidateSaleRequest(in)
	if err != nil {
		return nil, err
	}
	input.UserID = userID

	// Pre-verificación fuera de la transacción: rechazo rápido sin abrir tx.
	if err := CheckStock(uc.itemRepo, input.Items); err != nil {
		return nil, err
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:            uuid.New().String(),
		ClientID:      input.ClientID,
		UserID:        userID,
		Status:        entity.SaleStatusCompleted,
		PaymentMethod: input.PaymentMethod,
		Notes:         input.Notes,
		CreatedAt:     now,
	}
	var items []*entity.SaleItem

	err = uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		itemRepo repository.InventoryItemRepository,
		movRepo repository.MovementHistoryRepository,
	) error {
		// Re-verificación dentro de la transacción: cierra la carrera entre
		// la pre-verificación y el commit.
		if err := CheckStock(itemRepo, input.Items); err != nil {
			return err
		}

		lines := make([]dompos.Line, len(input.Items))
		for i, l := range input.Items {
			lines[i] = dompos.Line{Quantity: l.Quantity, UnitPrice: l.UnitPrice}
		}
		sale.Total = dompos.Total(lines)

		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		for _, l := range input.Items {
			item := &entity.SaleItem{
				ID:              uuid.New().String(),
				SaleID:          sale.ID,
				InventoryItemID: l.InventoryItemID,
				Quantity:        l.Quantity,
				UnitPrice:       l.UnitPrice,
				Subtotal:        dompos.Subtotal(dompos.Line{Quantity: l.Quantity, UnitPrice: l.UnitPrice}),
			}
			if err := saleRepo.CreateItem(item); err != nil {
				return err
			}
			items = append(items, item)
		}

		// Descuento condicional evaluado por el store: cero filas afectadas
		// significa que otra venta ganó la carrera, y aborta toda la tx.
		for _, l := range input.Items {
			ok, err := itemRepo.DecrementStock(l.InventoryItemID, l.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("producto %s: %w", l.InventoryItemID, domain.ErrInsufficientStock)
			}
		}

		return uc.recorder.RecordSale(movRepo, sale, items, now)
	})
	if err != nil {
		return nil, err
	}

	return toSaleResponse(sale, items), nil
}

func toSaleResponse(sale *entity.Sale, items []*entity.SaleItem) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:            sale.ID,
		ClientID:      sale.ClientID,
		ClientName:    sale.ClientName,
		UserID:        sale.UserID,
		Total:         sale.Total,
		Status:        sale.Status,
		PaymentMethod: sale.PaymentMethod,
		Notes:         sale.Notes,
		CreatedAt:     sale.CreatedAt,
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ID:              it.ID,
			InventoryItemID: it.InventoryItemID,
			Quantity:        it.Quantity,
			UnitPrice:       it.UnitPrice,
			Subtotal:        it.Subtotal,
		})
	}
	return resp
}
