package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItemResponse representación de un producto de inventario.
type InventoryItemResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Stock     int             `json:"stock"`
	Price     decimal.Decimal `json:"price"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// InventoryListResponse body de GET /api/inventory.
type InventoryListResponse struct {
	Items []InventoryItemResponse `json:"items"`
}
