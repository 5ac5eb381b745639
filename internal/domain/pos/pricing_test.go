package pos_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/clinivet/pos-api/internal/domain/pos"
)

func d(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	return decimal.RequireFromString(s)
}

func TestSubtotal_MultiplicaCantidadPorPrecio(t *testing.T) {
	got := pos.Subtotal(pos.Line{Quantity: 3, UnitPrice: d(t, "12.50")})
	assert.True(t, got.Equal(d(t, "37.50")), "subtotal esperado 37.50, got %s", got)
}

func TestSubtotal_SinErroresDeFlotante(t *testing.T) {
	// 3 × 0.10 en float64 daría 0.30000000000000004; con decimal es exacto.
	got := pos.Subtotal(pos.Line{Quantity: 3, UnitPrice: d(t, "0.10")})
	assert.True(t, got.Equal(d(t, "0.30")), "subtotal esperado 0.30, got %s", got)
}

func TestTotal_SumaLineas(t *testing.T) {
	lines := []pos.Line{
		{Quantity: 2, UnitPrice: d(t, "50.00")},
		{Quantity: 1, UnitPrice: d(t, "30.00")},
	}
	got := pos.Total(lines)
	assert.True(t, got.Equal(d(t, "130.00")), "total esperado 130.00, got %s", got)
}

func TestTotal_SinLineasEsCero(t *testing.T) {
	assert.True(t, pos.Total(nil).IsZero())
}

func TestTotal_EsDeterminista(t *testing.T) {
	lines := []pos.Line{
		{Quantity: 7, UnitPrice: d(t, "3.33")},
		{Quantity: 11, UnitPrice: d(t, "0.07")},
		{Quantity: 1, UnitPrice: d(t, "199.99")},
	}
	first := pos.Total(lines)
	for i := 0; i < 100; i++ {
		assert.True(t, first.Equal(pos.Total(lines)), "el total debe ser idéntico en cada cálculo")
	}
}
