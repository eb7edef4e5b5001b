package usecase

import (
	"context"

	"ferreteria-backend/internal/application/dto"
	"ferreteria-backend/internal/domain"
	"ferreteria-backend/internal/domain/entity"
	"ferreteria-backend/internal/domain/repository"
)

// PaymentMethodUseCase alta, baja y listado de medios de pago.
type PaymentMethodUseCase struct {
	methodRepo repository.PaymentMethodRepository
}

// NewPaymentMethodUseCase construye el caso de uso.
func NewPaymentMethodUseCase(methodRepo repository.PaymentMethodRepository) *PaymentMethodUseCase {
	return &PaymentMethodUseCase{methodRepo: methodRepo}
}

// Create da de alta un medio de pago. Solo se aceptan los códigos conocidos
// (EF, TC, TD, TR); un código repetido devuelve ErrDuplicate.
func (uc *PaymentMethodUseCase) Create(ctx context.Context, in dto.CreatePaymentMethodRequest) (*dto.PaymentMethodResponse, error) {
	if !entity.ValidPaymentCode(in.Codigo) {
		return nil, domain.ErrInvalidInput
	}
	method := &entity.PaymentMethod{Code: in.Codigo}
	if err := uc.methodRepo.Create(method); err != nil {
		return nil, err
	}
	return toPaymentMethodResponse(method), nil
}

// Get devuelve un medio de pago por ID.
func (uc *PaymentMethodUseCase) Get(ctx context.Context, id int64) (*dto.PaymentMethodResponse, error) {
	method, err := uc.methodRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if method == nil {
		return nil, domain.ErrNotFound
	}
	return toPaymentMethodResponse(method), nil
}

// List devuelve los medios de pago con su descripción legible.
func (uc *PaymentMethodUseCase) List(ctx context.Context) ([]dto.PaymentMethodResponse, error) {
	methods, err := uc.methodRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.PaymentMethodResponse, 0, len(methods))
	for _, m := range methods {
		out = append(out, *toPaymentMethodResponse(m))
	}
	return out, nil
}

// Delete elimina un medio de pago. Las ventas que lo usaban quedan sin medio
// de pago asignado.
func (uc *PaymentMethodUseCase) Delete(ctx context.Context, id int64) error {
	return uc.methodRepo.Delete(id)
}

func toPaymentMethodResponse(m *entity.PaymentMethod) *dto.PaymentMethodResponse {
	return &dto.PaymentMethodResponse{ID: m.ID, Codigo: m.Code, Descripcion: m.Label()}
}
