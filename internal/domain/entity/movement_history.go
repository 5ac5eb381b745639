package entity

import "time"

// Tipos de movimiento del historial de inventario.
const (
	MovementTypeSale = "SALE"
)

// ReasonPOSSale es el motivo registrado para las salidas generadas en caja.
const ReasonPOSSale = "Venta POS"

// MovementHistory es una fila del libro de movimientos de inventario.
// Es append-only: nunca se actualiza ni se borra una vez escrita.
// Quantity lleva signo: negativo para salidas por venta.
type MovementHistory struct {
	ID              string
	InventoryItemID string
	Type            string
	Quantity        int
	Reason          string
	UserID          string
	RelatedRecordID string // ID de la venta que originó el movimiento
	CreatedAt       time.Time
}
