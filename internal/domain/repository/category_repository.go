package repository

import "ferreteria-backend/internal/domain/entity"

// CategoryRepository define el acceso a las categorías de productos.
// El nombre de categoría es único.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id int64) (*entity.Category, error)
	List() ([]*entity.Category, error)
	Update(category *entity.Category) error
	Delete(id int64) error
}
