package repository

import "ferreteria-backend/internal/domain/entity"

// PurchaseOrderRepository define el acceso a los pedidos a proveedores y sus
// líneas.
type PurchaseOrderRepository interface {
	Create(order *entity.PurchaseOrder) error
	GetByID(id int64) (*entity.PurchaseOrder, error)
	// GetForUpdate obtiene el pedido bloqueando la fila, para marcar la
	// recepción sin carreras. Solo dentro de una transacción.
	GetForUpdate(id int64) (*entity.PurchaseOrder, error)
	List() ([]*entity.PurchaseOrder, error)
	Update(order *entity.PurchaseOrder) error
	Delete(id int64) error

	CreateLine(line *entity.PurchaseOrderLine) error
	ListLines(orderID int64) ([]*entity.PurchaseOrderLine, error)
	DeleteLine(id int64) error
}
