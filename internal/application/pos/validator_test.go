package pos_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinivet/pos-api/internal/application/dto"
	"github.com/clinivet/pos-api/internal/application/pos"
	"github.com/clinivet/pos-api/internal/domain"
	"github.com/clinivet/pos-api/internal/domain/entity"
)

func validRequest() dto.CreateSaleRequest {
	return dto.CreateSaleRequest{
		ClientID: "client-1",
		Items: []dto.SaleItemRequest{
			{InventoryItemID: "item-1", Quantity: 2, UnitPrice: decimal.RequireFromString("50.00")},
			{InventoryItemID: "item-2", Quantity: 1, UnitPrice: decimal.RequireFromString("30.00")},
		},
		PaymentMethod: entity.PaymentCash,
		Notes:         "sin novedades",
	}
}

func TestValidateSaleRequest_Valida(t *testing.T) {
	in, err := pos.ValidateSaleRequest(validRequest())
	require.NoError(t, err)
	assert.Equal(t, "client-1", in.ClientID)
	assert.Equal(t, entity.PaymentCash, in.PaymentMethod)
	assert.Len(t, in.Items, 2)
	assert.Equal(t, 2, in.Items[0].Quantity)
}

func TestValidateSaleRequest_ClienteRequerido(t *testing.T) {
	req := validRequest()
	req.ClientID = ""
	_, err := pos.ValidateSaleRequest(req)
	require.ErrorIs(t, err, domain.ErrMissingFields)
	assert.Contains(t, err.Error(), "requeridos")
}

func TestValidateSaleRequest_SinLineas(t *testing.T) {
	req := validRequest()
	req.Items = nil
	_, err := pos.ValidateSaleRequest(req)
	require.ErrorIs(t, err, domain.ErrNoItems)
	assert.Contains(t, err.Error(), "al menos un producto")
}

func TestValidateSaleRequest_MetodoPagoRequerido(t *testing.T) {
	req := validRequest()
	req.PaymentMethod = ""
	_, err := pos.ValidateSaleRequest(req)
	require.ErrorIs(t, err, domain.ErrMissingFields)
}

func TestValidateSaleRequest_MetodoPagoDesconocido(t *testing.T) {
	req := validRequest()
	req.PaymentMethod = "BARTER"
	_, err := pos.ValidateSaleRequest(req)
	require.ErrorIs(t, err, domain.ErrInvalidPayment)
}

func TestValidateSaleRequest_CantidadNoPositiva(t *testing.T) {
	for _, qty := range []int{0, -3} {
		req := validRequest()
		req.Items[1].Quantity = qty
		_, err := pos.ValidateSaleRequest(req)
		require.ErrorIs(t, err, domain.ErrInvalidInput, "quantity=%d debe rechazarse", qty)
	}
}

func TestValidateSaleRequest_PrecioNegativo(t *testing.T) {
	req := validRequest()
	req.Items[0].UnitPrice = decimal.RequireFromString("-1.00")
	_, err := pos.ValidateSaleRequest(req)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestValidateSaleRequest_LineaSinProducto(t *testing.T) {
	req := validRequest()
	req.Items[0].InventoryItemID = ""
	_, err := pos.ValidateSaleRequest(req)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}
