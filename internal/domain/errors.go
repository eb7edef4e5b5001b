package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrProtected         = errors.New("registro referenciado por otros registros")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrReceiptExhausted  = errors.New("no se pudo generar un número de comprobante único")
)
