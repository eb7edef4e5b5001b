package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Price es el precio vigente (NUMERIC 10,2); Stock es la cantidad en existencia y
// solo se modifica a través del servicio de ajuste de stock, nunca por el CRUD.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	CategoryID  *int64 // opcional; SET NULL al borrar la categoría
	SupplierID  *int64 // opcional; SET NULL al borrar el proveedor
	Image       string // referencia a la imagen (ruta), la carga de archivos queda fuera
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
