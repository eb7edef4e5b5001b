package repository

import (
	"github.com/shopspring/decimal"

	"ferreteria-backend/internal/domain/entity"
)

// SaleFilter restringe el listado de ventas. Por defecto se excluyen las
// anuladas; IncludeVoided las incorpora.
type SaleFilter struct {
	ClientID      *int64
	Query         string // busca por número de comprobante o nombre del cliente
	IncludeVoided bool
	Limit         int
	Offset        int
}

// SaleRepository define el acceso a las ventas y sus líneas.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id int64) (*entity.Sale, error)
	// GetForUpdate obtiene la venta bloqueando la fila. Solo dentro de una
	// transacción.
	GetForUpdate(id int64) (*entity.Sale, error)
	List(filter SaleFilter) ([]*entity.Sale, error)
	// ExistsByReceiptNumber indica si el número de comprobante ya está tomado.
	ExistsByReceiptNumber(number string) (bool, error)
	// UpdateTotal persiste el importe total recalculado de la venta.
	UpdateTotal(id int64, total decimal.Decimal) error
	// SetVoided marca o desmarca la anulación de la venta.
	SetVoided(id int64, voided bool) error
	CountByClient(clientID int64) (int, error)

	CreateLine(line *entity.SaleLine) error
	GetLineByID(id int64) (*entity.SaleLine, error)
	UpdateLine(line *entity.SaleLine) error
	DeleteLine(id int64) error
	ListLines(saleID int64) ([]*entity.SaleLine, error)
	// SumLineSubtotals agrega los importes de las líneas directamente en la
	// base, para recalcular el total sin traer las filas.
	SumLineSubtotals(saleID int64) (decimal.Decimal, error)
}
