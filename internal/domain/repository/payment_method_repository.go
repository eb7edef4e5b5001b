package repository

import "ferreteria-backend/internal/domain/entity"

// PaymentMethodRepository define el acceso a los medios de pago.
// El código (EF, TC, TD, TR) es único.
type PaymentMethodRepository interface {
	Create(method *entity.PaymentMethod) error
	GetByID(id int64) (*entity.PaymentMethod, error)
	GetByCode(code string) (*entity.PaymentMethod, error)
	List() ([]*entity.PaymentMethod, error)
	Delete(id int64) error
}
