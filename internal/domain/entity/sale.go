package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta. El motor POS solo produce COMPLETED; otros estados
// (anulación, devolución) pertenecen a flujos externos.
const (
	SaleStatusCompleted = "COMPLETED"
)

// Métodos de pago aceptados en caja.
const (
	PaymentCash          = "CASH"
	PaymentCreditCard    = "CREDIT_CARD"
	PaymentDebitCard     = "DEBIT_CARD"
	PaymentTransfer      = "TRANSFER"
	PaymentMobilePayment = "MOBILE_PAYMENT"
)

// ValidPaymentMethod indica si el método de pago es uno de los reconocidos.
func ValidPaymentMethod(method string) bool {
	switch method {
	case PaymentCash, PaymentCreditCard, PaymentDebitCard, PaymentTransfer, PaymentMobilePayment:
		return true
	}
	return false
}

// Sale representa una venta POS confirmada. Se crea completa en una sola
// transacción y es inmutable después del commit.
type Sale struct {
	ID            string
	ClientID      string
	UserID        string
	Total         decimal.Decimal
	Status        string
	PaymentMethod string
	Notes         string
	CreatedAt     time.Time

	// ClientName no es columna de sales; lo rellenan las consultas que hacen
	// join con clients (listado y detalle).
	ClientName string
}
