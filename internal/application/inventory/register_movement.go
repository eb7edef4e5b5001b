package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ferreteria-backend/internal/application/dto"
	"ferreteria-backend/internal/domain"
	"ferreteria-backend/internal/domain/entity"
	"ferreteria-backend/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos manuales de stock de forma
// transaccional. Una entrada suma al stock y una salida resta; ambas pasan por
// el StockAdjuster, de modo que una salida manual nunca deja stock negativo.
type RegisterMovementUseCase struct {
	txRunner TxRunner
	adjuster *StockAdjuster
	movRepo  repository.StockMovementRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, adjuster *StockAdjuster, movRepo repository.StockMovementRepository) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, adjuster: adjuster, movRepo: movRepo}
}

// RegisterMovement valida la entrada, inicia una transacción y aplica el
// ajuste. Devuelve el movimiento registrado.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	if in.Cantidad <= 0 {
		return nil, domain.ErrInvalidInput
	}
	var delta int
	switch in.Tipo {
	case entity.MovementTypeIn:
		delta = in.Cantidad
	case entity.MovementTypeOut:
		delta = -in.Cantidad
	default:
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	txID := uuid.New().String()

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
	) error {
		return uc.adjuster.AdjustInTx(productRepo, movRepo, in.ProductoID, delta, in.Comprobante, now, txID)
	})
	if err != nil {
		return nil, err
	}

	return &dto.MovementResponse{
		ProductoID:    in.ProductoID,
		Tipo:          in.Tipo,
		Cantidad:      in.Cantidad,
		Fecha:         now,
		Comprobante:   in.Comprobante,
		TransaccionID: txID,
	}, nil
}

// ListMovements lista el libro de movimientos con filtros opcionales.
func (uc *RegisterMovementUseCase) ListMovements(ctx context.Context, in dto.ListMovementsRequest) ([]dto.MovementResponse, error) {
	in.DefaultPage()
	movs, err := uc.movRepo.List(repository.MovementFilter{
		ProductID: in.ProductoID,
		Type:      in.Tipo,
		Limit:     in.Limit,
		Offset:    in.Offset,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, dto.MovementResponse{
			ID:            m.ID,
			ProductoID:    m.ProductID,
			Tipo:          m.Type,
			Cantidad:      m.Quantity,
			Fecha:         m.Date,
			Comprobante:   m.Reference,
			TransaccionID: m.TransactionID,
		})
	}
	return out, nil
}
