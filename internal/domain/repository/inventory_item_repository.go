package repository

import "github.com/clinivet/pos-api/internal/domain/entity"

// InventoryItemRepository define el puerto de lectura y descuento de stock.
type InventoryItemRepository interface {
	// GetByID devuelve nil, nil si el producto no existe.
	GetByID(id string) (*entity.InventoryItem, error)
	List(limit, offset int) ([]*entity.InventoryItem, error)
	// DecrementStock descuenta quantity con un update condicional evaluado por
	// el store (stock = stock - quantity solo si stock >= quantity). Devuelve
	// false si ninguna fila fue afectada: producto inexistente o stock
	// insuficiente en el momento del write.
	DecrementStock(id string, quantity int) (bool, error)
}
