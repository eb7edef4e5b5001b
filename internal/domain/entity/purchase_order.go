package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrder representa un pedido realizado a un proveedor.
// Se borra en cascada con el proveedor; sus líneas en cascada con el pedido.
type PurchaseOrder struct {
	ID         int64
	SupplierID int64
	OrderedAt  time.Time // fecha del pedido, inmutable
	Received   bool      // recibido: al marcarse, ingresa el stock de sus líneas
}

// PurchaseOrderLine es una línea de pedido (producto y cantidad).
// UnitPrice arranca en cero y NO se congela automáticamente, a diferencia
// de las líneas de venta.
type PurchaseOrderLine struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
}
