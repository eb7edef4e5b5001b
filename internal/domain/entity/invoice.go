package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice representa una factura emitida.
// A diferencia de Sale, el importe total NO se almacena: se calcula como
// agregado al momento de la lectura. El cliente está protegido contra borrado
// mientras existan facturas que lo referencien.
type Invoice struct {
	ID       int64
	Date     time.Time
	ClientID *int64
}

// InvoiceLine es una línea de factura. El producto referenciado está protegido
// contra borrado.
type InvoiceLine struct {
	ID              int64
	InvoiceID       int64
	ProductID       int64
	Quantity        int
	UnitPrice       decimal.Decimal
	PaymentMethodID *int64
}
