package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ferreteria-backend/internal/domain"
	"ferreteria-backend/internal/domain/repository"
)

// VoidSaleUseCase anula una venta y devuelve el stock descontado.
type VoidSaleUseCase struct {
	txRunner BillingTxRunner
	adjuster StockAdjuster
}

// NewVoidSaleUseCase construye el caso de uso.
func NewVoidSaleUseCase(txRunner BillingTxRunner, adjuster StockAdjuster) *VoidSaleUseCase {
	return &VoidSaleUseCase{txRunner: txRunner, adjuster: adjuster}
}

// Void marca la venta como anulada y registra una entrada de reversa por cada
// línea. Anular una venta ya anulada devuelve ErrConflict: el stock se
// devuelve a lo sumo una vez.
func (uc *VoidSaleUseCase) Void(ctx context.Context, saleID int64) error {
	now := time.Now()
	txID := uuid.New().String()

	return uc.txRunner.RunBilling(ctx, func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
	) error {
		sale, err := saleRepo.GetForUpdate(saleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}
		if sale.Voided {
			return domain.ErrConflict
		}
		if err := saleRepo.SetVoided(saleID, true); err != nil {
			return err
		}

		lines, err := saleRepo.ListLines(saleID)
		if err != nil {
			return err
		}
		reference := fmt.Sprintf("Anulación venta %s", sale.ReceiptNumber)
		for _, line := range lines {
			if err := uc.adjuster.AdjustInTx(productRepo, movRepo, line.ProductID, line.Quantity, reference, now, txID); err != nil {
				return err
			}
		}
		return nil
	})
}
