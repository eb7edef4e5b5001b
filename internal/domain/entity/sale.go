package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta.
// ReceiptNumber es un numeral de 13 dígitos único entre todas las ventas,
// generado al crear la venta. Total (importe_total) es un campo almacenado que
// se recalcula cada vez que cambia una línea. Voided (anulada) marca la venta
// como anulada sin borrarla.
type Sale struct {
	ID              int64
	Date            time.Time
	ReceiptNumber   string // numero_comprobante
	ClientID        *int64
	PaymentMethodID *int64
	Total           decimal.Decimal // importe_total
	Voided          bool            // anulada
}

// SaleLine representa el detalle de una venta (producto, cantidad, precio).
// UnitPrice se congela en el primer guardado con el precio vigente del producto
// y no vuelve a congelarse; Subtotal (importe) = Quantity × UnitPrice y se
// recalcula en cada guardado.
type SaleLine struct {
	ID        int64
	SaleID    int64
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal // precio_unitario, congelado
	Subtotal  decimal.Decimal // importe
	CreatedAt time.Time       // hora
}
