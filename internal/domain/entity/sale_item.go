package entity

import "github.com/shopspring/decimal"

// SaleItem representa una línea de una venta. Se crea junto con su Sale y
// nunca se modifica ni se elimina.
type SaleItem struct {
	ID              string
	SaleID          string
	InventoryItemID string
	Quantity        int
	UnitPrice       decimal.Decimal
	Subtotal        decimal.Decimal
}
