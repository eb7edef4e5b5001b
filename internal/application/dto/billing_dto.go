package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest línea de venta en el alta. El precio unitario no se envía:
// se congela desde el precio vigente del producto.
type SaleItemRequest struct {
	ProductoID int64 `json:"producto_id" validate:"required"`
	Cantidad   int   `json:"cantidad" validate:"required,gt=0"`
}

// CreateSaleRequest alta de venta, con o sin líneas iniciales.
type CreateSaleRequest struct {
	ClienteID     *int64            `json:"cliente_id"`
	MedioDePagoID *int64            `json:"medio_de_pago_id"`
	Items         []SaleItemRequest `json:"items" validate:"dive"`
}

// AddSaleLineRequest agrega una línea a una venta existente.
type AddSaleLineRequest struct {
	ProductoID int64 `json:"producto_id" validate:"required"`
	Cantidad   int   `json:"cantidad" validate:"required,gt=0"`
}

// UpdateSaleLineRequest cambia la cantidad de una línea. El precio unitario
// congelado nunca se modifica.
type UpdateSaleLineRequest struct {
	Cantidad int `json:"cantidad" validate:"required,gt=0"`
}

// ListSalesRequest filtros del listado de ventas (query params).
type ListSalesRequest struct {
	Q               string `query:"q"`
	IncluirAnuladas bool   `query:"incluir_anuladas"`
	PageRequest
}

// SaleLineResponse línea de venta en respuestas.
type SaleLineResponse struct {
	ID             int64           `json:"id"`
	ProductoID     int64           `json:"producto_id"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Importe        decimal.Decimal `json:"importe"`
}

// SaleResponse venta en respuestas.
type SaleResponse struct {
	ID                int64              `json:"id"`
	Fecha             time.Time          `json:"fecha"`
	NumeroComprobante string             `json:"numero_comprobante"`
	ClienteID         *int64             `json:"cliente_id"`
	MedioDePagoID     *int64             `json:"medio_de_pago_id"`
	ImporteTotal      decimal.Decimal    `json:"importe_total"`
	Anulada           bool               `json:"anulada"`
	Items             []SaleLineResponse `json:"items,omitempty"`
}

// InvoiceItemRequest línea de factura. El precio unitario se indica
// explícitamente; el total de la factura se deriva de las líneas.
type InvoiceItemRequest struct {
	ProductoID     int64           `json:"producto_id" validate:"required"`
	Cantidad       int             `json:"cantidad" validate:"required,gt=0"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	MedioDePagoID  *int64          `json:"medio_de_pago_id"`
}

// CreateInvoiceRequest alta de factura.
type CreateInvoiceRequest struct {
	ClienteID *int64               `json:"cliente_id"`
	Items     []InvoiceItemRequest `json:"items" validate:"dive"`
}

// InvoiceLineResponse línea de factura en respuestas.
type InvoiceLineResponse struct {
	ID             int64           `json:"id"`
	ProductoID     int64           `json:"producto_id"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	MedioDePagoID  *int64          `json:"medio_de_pago_id"`
}

// InvoiceResponse factura en respuestas. ImporteTotal se calcula al leer,
// nunca se almacena.
type InvoiceResponse struct {
	ID           int64                 `json:"id"`
	Fecha        time.Time             `json:"fecha"`
	ClienteID    *int64                `json:"cliente_id"`
	ImporteTotal decimal.Decimal       `json:"importe_total"`
	Items        []InvoiceLineResponse `json:"items,omitempty"`
}

// CreatePaymentMethodRequest alta de medio de pago.
type CreatePaymentMethodRequest struct {
	Codigo string `json:"codigo" validate:"required,oneof=EF TC TD TR"`
}

// PaymentMethodResponse medio de pago en respuestas.
type PaymentMethodResponse struct {
	ID          int64  `json:"id"`
	Codigo      string `json:"codigo"`
	Descripcion string `json:"descripcion"`
}
