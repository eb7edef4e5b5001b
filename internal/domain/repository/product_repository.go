package repository

import "ferreteria-backend/internal/domain/entity"

// ProductFilter restringe el listado de productos. Los campos en nil o vacíos
// no filtran.
type ProductFilter struct {
	CategoryID *int64
	SupplierID *int64
	Query      string // busca por nombre o descripción, case-insensitive
	Limit      int
	Offset     int
}

// ProductRepository define el acceso al catálogo de productos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando la fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(id int64) (*entity.Product, error)
	List(filter ProductFilter) ([]*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStock persiste únicamente la cantidad en stock del producto.
	UpdateStock(id int64, stock int) error
	Delete(id int64) error
}
