package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest línea de venta dentro de CreateSaleRequest.
type SaleItemRequest struct {
	InventoryItemID string          `json:"inventoryItemId"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
}

// CreateSaleRequest body para POST /api/sales.
type CreateSaleRequest struct {
	ClientID      string            `json:"clientId"`
	Items         []SaleItemRequest `json:"items"`
	PaymentMethod string            `json:"paymentMethod"`
	Notes         string            `json:"notes,omitempty"`
}

// SaleItemResponse línea de venta en respuestas.
type SaleItemResponse struct {
	ID              string          `json:"id"`
	InventoryItemID string          `json:"inventoryItemId"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	Subtotal        decimal.Decimal `json:"subtotal"`
}

// SaleResponse representación de una venta confirmada.
type SaleResponse struct {
	ID            string             `json:"id"`
	ClientID      string             `json:"clientId"`
	ClientName    string             `json:"clientName,omitempty"`
	UserID        string             `json:"userId"`
	Total         decimal.Decimal    `json:"total"`
	Status        string             `json:"status"`
	PaymentMethod string             `json:"paymentMethod"`
	Notes         string             `json:"notes,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
	Items         []SaleItemResponse `json:"items,omitempty"`
}

// CreateSaleResponse body de éxito de POST /api/sales.
type CreateSaleResponse struct {
	Sale SaleResponse `json:"sale"`
}

// ListSalesQuery query params de GET /api/sales.
// StartDate y EndDate en formato YYYY-MM-DD, ambos inclusivos.
type ListSalesQuery struct {
	Page      int    `query:"page"`
	Limit     int    `query:"limit"`
	Search    string `query:"search"`
	Status    string `query:"status"`
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
}

// SaleListResponse body de GET /api/sales.
type SaleListResponse struct {
	Sales      []SaleResponse `json:"sales"`
	Pagination Pagination     `json:"pagination"`
}
