package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem representa un producto o servicio vendible con stock propio.
// El stock solo se descuenta mediante el update condicional del repositorio,
// nunca con leer-modificar-escribir en la aplicación.
type InventoryItem struct {
	ID        string
	Name      string
	Stock     int
	Price     decimal.Decimal
	UpdatedAt time.Time
}
