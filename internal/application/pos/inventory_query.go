package pos

import (
	"github.com/clinivet/pos-api/internal/application/dto"
	"github.com/clinivet/pos-api/internal/domain/repository"
)

// InventoryQueryUseCase listado de solo lectura del inventario para la
// pantalla de caja. No cachea: el stock siempre se lee del store.
type InventoryQueryUseCase struct {
	itemRepo repository.InventoryItemRepository
}

// NewInventoryQueryUseCase construye el caso de uso.
func NewInventoryQueryUseCase(itemRepo repository.InventoryItemRepository) *InventoryQueryUseCase {
	return &InventoryQueryUseCase{itemRepo: itemRepo}
}

// List devuelve los productos del inventario con su stock y precio actuales.
func (uc *InventoryQueryUseCase) List(limit, offset int) (*dto.InventoryListResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	items, err := uc.itemRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	resp := &dto.InventoryListResponse{Items: make([]dto.InventoryItemResponse, 0, len(items))}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.InventoryItemResponse{
			ID:        it.ID,
			Name:      it.Name,
			Stock:     it.Stock,
			Price:     it.Price,
			UpdatedAt: it.UpdatedAt,
		})
	}
	return resp, nil
}
