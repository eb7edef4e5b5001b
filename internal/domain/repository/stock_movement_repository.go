package repository

import "ferreteria-backend/internal/domain/entity"

// MovementFilter restringe el listado de movimientos de stock.
type MovementFilter struct {
	ProductID *int64
	Type      string // "entrada", "salida" o vacío para ambos
	Limit     int
	Offset    int
}

// StockMovementRepository define el libro mayor de movimientos de stock.
// Los movimientos son inmutables: solo se crean y se consultan.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id int64) (*entity.StockMovement, error)
	List(filter MovementFilter) ([]*entity.StockMovement, error)
	// ExistsByProductAndReference indica si ya hay un movimiento registrado
	// para el producto con esa referencia. Es la base de la idempotencia de
	// los descuentos por venta.
	ExistsByProductAndReference(productID int64, reference string) (bool, error)
}
