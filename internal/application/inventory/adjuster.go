package inventory

import (
	"time"

	"ferreteria-backend/internal/domain"
	"ferreteria-backend/internal/domain/entity"
	"ferreteria-backend/internal/domain/repository"
)

// StockAdjuster es el único punto por el que cambia el stock de un producto.
// Todo efecto de inventario (venta, anulación, recepción de pedido, movimiento
// manual) pasa por AdjustInTx con un delta con signo.
type StockAdjuster struct{}

// NewStockAdjuster construye el servicio de ajuste.
func NewStockAdjuster() *StockAdjuster {
	return &StockAdjuster{}
}

// AdjustInTx aplica un delta de stock usando los repositorios del caller
// (misma transacción). Bloquea la fila del producto (SELECT FOR UPDATE),
// rechaza stock negativo y registra el movimiento en el libro mayor.
//
// El cambio de stock se aplica en cada llamada. Si ya existe un movimiento
// para (producto, comprobante), solo se omite el asiento: el libro registra a
// lo sumo un movimiento por comprobante y producto.
func (a *StockAdjuster) AdjustInTx(
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
	productID int64,
	delta int,
	reference string,
	now time.Time,
	txID string,
) error {
	if delta == 0 {
		return domain.ErrInvalidInput
	}

	product, err := productRepo.GetForUpdate(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}

	newStock := product.Stock + delta
	if newStock < 0 {
		return domain.ErrInsufficientStock
	}
	if err := productRepo.UpdateStock(productID, newStock); err != nil {
		return err
	}

	if reference != "" {
		exists, err := movRepo.ExistsByProductAndReference(productID, reference)
		if err != nil {
			return err
		}
		if exists {
			return nil
		}
	}

	movType := entity.MovementTypeIn
	quantity := delta
	if delta < 0 {
		movType = entity.MovementTypeOut
		quantity = -delta
	}
	mov := &entity.StockMovement{
		ProductID:     productID,
		Type:          movType,
		Quantity:      quantity,
		Date:          now,
		Reference:     reference,
		TransactionID: txID,
	}
	return movRepo.Create(mov)
}
