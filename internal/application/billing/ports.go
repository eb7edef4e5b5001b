package billing

import (
	"context"
	"time"

	"ferreteria-backend/internal/domain/repository"
)

// BillingTxRunner ejecuta una función dentro de una transacción que incluye
// los repos de ventas y de inventario. Una venta y su efecto de stock se
// confirman o descartan juntos.
type BillingTxRunner interface {
	RunBilling(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
	) error) error
}

// StockAdjuster integra las ventas con el inventario. AdjustInTx aplica un
// delta de stock usando los repositorios del caller (misma transacción); si
// devuelve error (ej: ErrInsufficientStock) el caller hace rollback.
type StockAdjuster interface {
	AdjustInTx(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
		productID int64,
		delta int,
		reference string,
		now time.Time,
		txID string,
	) error
}
