package dto

import "time"

// RegisterMovementRequest alta manual de un movimiento de stock.
type RegisterMovementRequest struct {
	ProductoID  int64  `json:"producto_id" validate:"required"`
	Tipo        string `json:"tipo" validate:"required,oneof=entrada salida"`
	Cantidad    int    `json:"cantidad" validate:"required,gt=0"`
	Comprobante string `json:"comprobante" validate:"max=150"`
}

// ListMovementsRequest filtros del libro de movimientos (query params).
type ListMovementsRequest struct {
	ProductoID *int64 `query:"producto_id"`
	Tipo       string `query:"tipo" validate:"omitempty,oneof=entrada salida"`
	PageRequest
}

// MovementResponse movimiento de stock en respuestas.
type MovementResponse struct {
	ID            int64     `json:"id"`
	ProductoID    int64     `json:"producto_id"`
	Tipo          string    `json:"tipo"`
	Cantidad      int       `json:"cantidad"`
	Fecha         time.Time `json:"fecha"`
	Comprobante   string    `json:"comprobante"`
	TransaccionID string    `json:"transaccion_id"`
}
