package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest línea de un pedido a proveedor. El precio unitario es el
// acordado con el proveedor; no se congela desde el catálogo.
type OrderItemRequest struct {
	ProductoID     int64           `json:"producto_id" validate:"required"`
	Cantidad       int             `json:"cantidad" validate:"required,gt=0"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
}

// CreateOrderRequest alta de pedido a proveedor.
type CreateOrderRequest struct {
	ProveedorID int64              `json:"proveedor_id" validate:"required"`
	Items       []OrderItemRequest `json:"items" validate:"dive"`
}

// OrderLineResponse línea de pedido en respuestas.
type OrderLineResponse struct {
	ID             int64           `json:"id"`
	ProductoID     int64           `json:"producto_id"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
}

// OrderResponse pedido en respuestas.
type OrderResponse struct {
	ID          int64               `json:"id"`
	ProveedorID int64               `json:"proveedor_id"`
	FechaPedido time.Time           `json:"fecha_pedido"`
	Recibido    bool                `json:"recibido"`
	Items       []OrderLineResponse `json:"items,omitempty"`
}
