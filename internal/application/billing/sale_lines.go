package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ferreteria-backend/internal/application/dto"
	"ferreteria-backend/internal/domain"
	"ferreteria-backend/internal/domain/entity"
	"ferreteria-backend/internal/domain/repository"
	"ferreteria-backend/internal/domain/sales"
)

// SaleLinesUseCase mantiene las líneas de una venta existente. Cada operación
// recalcula el importe total de la venta dueña dentro de la misma transacción.
type SaleLinesUseCase struct {
	txRunner BillingTxRunner
	adjuster StockAdjuster
}

// NewSaleLinesUseCase construye el caso de uso.
func NewSaleLinesUseCase(txRunner BillingTxRunner, adjuster StockAdjuster) *SaleLinesUseCase {
	return &SaleLinesUseCase{txRunner: txRunner, adjuster: adjuster}
}

// AddLine agrega una línea a la venta. Congela el precio unitario desde el
// precio vigente del producto y descuenta stock solo si la venta no está
// anulada.
func (uc *SaleLinesUseCase) AddLine(ctx context.Context, saleID int64, in dto.AddSaleLineRequest) (*dto.SaleLineResponse, error) {
	if in.Cantidad <= 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	txID := uuid.New().String()
	var line *entity.SaleLine

	err := uc.txRunner.RunBilling(ctx, func(
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
		product, err := productRepo.GetByID(in.ProductoID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		line = &entity.SaleLine{
			SaleID:    saleID,
			ProductID: in.ProductoID,
			Quantity:  in.Cantidad,
			UnitPrice: product.Price,
			Subtotal:  sales.LineSubtotal(in.Cantidad, product.Price),
			CreatedAt: now,
		}
		if err := saleRepo.CreateLine(line); err != nil {
			return err
		}
		if !sale.Voided {
			reference := fmt.Sprintf("Venta %s", sale.ReceiptNumber)
			if err := uc.adjuster.AdjustInTx(productRepo, movRepo, in.ProductoID, -in.Cantidad, reference, now, txID); err != nil {
				return err
			}
		}
		return recomputeTotal(saleRepo, saleID)
	})
	if err != nil {
		return nil, err
	}

	return &dto.SaleLineResponse{
		ID:             line.ID,
		ProductoID:     line.ProductID,
		Cantidad:       line.Quantity,
		PrecioUnitario: line.UnitPrice,
		Importe:        line.Subtotal,
	}, nil
}

// UpdateLine cambia la cantidad de una línea. El precio unitario congelado no
// se vuelve a leer del producto, solo se recalcula el importe. El stock no se
// ajusta: el efecto de inventario ocurre únicamente al crear la línea.
func (uc *SaleLinesUseCase) UpdateLine(ctx context.Context, lineID int64, in dto.UpdateSaleLineRequest) (*dto.SaleLineResponse, error) {
	if in.Cantidad <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var line *entity.SaleLine
	err := uc.txRunner.RunBilling(ctx, func(
		saleRepo repository.SaleRepository,
		_ repository.ProductRepository,
		_ repository.StockMovementRepository,
	) error {
		var err error
		line, err = saleRepo.GetLineByID(lineID)
		if err != nil {
			return err
		}
		if line == nil {
			return domain.ErrNotFound
		}
		line.Quantity = in.Cantidad
		line.Subtotal = sales.LineSubtotal(in.Cantidad, line.UnitPrice)
		if err := saleRepo.UpdateLine(line); err != nil {
			return err
		}
		return recomputeTotal(saleRepo, line.SaleID)
	})
	if err != nil {
		return nil, err
	}

	return &dto.SaleLineResponse{
		ID:             line.ID,
		ProductoID:     line.ProductID,
		Cantidad:       line.Quantity,
		PrecioUnitario: line.UnitPrice,
		Importe:        line.Subtotal,
	}, nil
}

// RemoveLine elimina una línea y recalcula el total de la venta dueña.
func (uc *SaleLinesUseCase) RemoveLine(ctx context.Context, lineID int64) error {
	return uc.txRunner.RunBilling(ctx, func(
		saleRepo repository.SaleRepository,
		_ repository.ProductRepository,
		_ repository.StockMovementRepository,
	) error {
		line, err := saleRepo.GetLineByID(lineID)
		if err != nil {
			return err
		}
		if line == nil {
			return domain.ErrNotFound
		}
		if err := saleRepo.DeleteLine(lineID); err != nil {
			return err
		}
		return recomputeTotal(saleRepo, line.SaleID)
	})
}

// recomputeTotal persiste importe_total = Σ importe de las líneas vigentes.
// Una venta sin líneas queda en cero.
func recomputeTotal(saleRepo repository.SaleRepository, saleID int64) error {
	total, err := saleRepo.SumLineSubtotals(saleID)
	if err != nil {
		return err
	}
	return saleRepo.UpdateTotal(saleID, total)
}
