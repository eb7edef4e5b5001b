package sales

import (
	"github.com/shopspring/decimal"

	"ferreteria-backend/internal/domain/entity"
)

// LineSubtotal calcula el importe de una línea: cantidad × precio unitario
// (servicio de dominio).
func LineSubtotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// SaleTotal suma los importes de las líneas de una venta.
// Sin líneas, el total es cero.
func SaleTotal(lines []*entity.SaleLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal)
	}
	return total
}
