package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIn  = "entrada"
	MovementTypeOut = "salida"
)

// StockMovement representa un movimiento de stock (entrada o salida).
// Registro inmutable de auditoría: se crea una vez y nunca se actualiza.
// Reference lleva el comprobante que originó el movimiento
// (ej. "Venta 1234567890123", "Pedido 7") y sirve como guarda de deduplicación.
type StockMovement struct {
	ID            int64
	ProductID     int64
	Type          string // entrada | salida
	Quantity      int    // siempre positivo; el signo lo da Type
	Date          time.Time
	Reference     string // comprobante, texto libre, opcional
	TransactionID string // agrupa los movimientos generados por una misma operación
}
