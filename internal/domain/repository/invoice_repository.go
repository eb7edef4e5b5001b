package repository

import (
	"github.com/shopspring/decimal"

	"ferreteria-backend/internal/domain/entity"
)

// InvoiceRepository define el acceso a las facturas y sus líneas.
// El total de una factura nunca se almacena: Total lo calcula como agregado.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id int64) (*entity.Invoice, error)
	List() ([]*entity.Invoice, error)
	Update(invoice *entity.Invoice) error
	Delete(id int64) error

	CreateLine(line *entity.InvoiceLine) error
	ListLines(invoiceID int64) ([]*entity.InvoiceLine, error)
	DeleteLine(id int64) error
	// Total suma cantidad × precio unitario sobre las líneas de la factura.
	Total(invoiceID int64) (decimal.Decimal, error)
	// Totals calcula el total de todas las facturas en una sola consulta
	// agrupada. Las facturas sin líneas no aparecen en el mapa.
	Totals() (map[int64]decimal.Decimal, error)
}
