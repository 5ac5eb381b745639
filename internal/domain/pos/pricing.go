// Package pos contiene la lógica de dominio pura del punto de venta.
package pos

import "github.com/shopspring/decimal"

// Line es una línea de venta para efectos de cálculo: cantidad y precio unitario.
type Line struct {
	Quantity  int
	UnitPrice decimal.Decimal
}

// Subtotal calcula cantidad × precio unitario con aritmética decimal exacta.
func Subtotal(l Line) decimal.Decimal {
	return decimal.NewFromInt(int64(l.Quantity)).Mul(l.UnitPrice)
}

// Total suma los subtotales de todas las líneas. Determinista y sin
// redondeo intermedio; el impuesto (si aplica) es un paso aparte del caller.
func Total(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(Subtotal(l))
	}
	return total
}
