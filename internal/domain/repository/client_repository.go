package repository

import "ferreteria-backend/internal/domain/entity"

// ClientRepository define el acceso a los clientes de la ferretería.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id int64) (*entity.Client, error)
	List() ([]*entity.Client, error)
	Update(client *entity.Client) error
	Delete(id int64) error
}
