package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ferreteria-backend/internal/application/dto"
	"ferreteria-backend/internal/domain"
	"ferreteria-backend/internal/domain/entity"
	"ferreteria-backend/internal/domain/repository"
	"ferreteria-backend/internal/domain/sales"
)

// maxReceiptAttempts acota los reintentos ante colisión de número de
// comprobante. Con 9×10^12 valores posibles, agotar los intentos indica un
// problema real y no mala suerte.
const maxReceiptAttempts = 10

// CreateSaleUseCase crea una venta, congela precios y descuenta el stock en
// una sola transacción.
type CreateSaleUseCase struct {
	txRunner   BillingTxRunner
	adjuster   StockAdjuster
	clientRepo repository.ClientRepository
	methodRepo repository.PaymentMethodRepository

	// newReceipt genera candidatos de número de comprobante; reemplazable en tests.
	newReceipt func() string
}

// NewCreateSaleUseCase construye el caso de uso.
func NewCreateSaleUseCase(
	txRunner BillingTxRunner,
	adjuster StockAdjuster,
	clientRepo repository.ClientRepository,
	methodRepo repository.PaymentMethodRepository,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		txRunner:   txRunner,
		adjuster:   adjuster,
		clientRepo: clientRepo,
		methodRepo: methodRepo,
		newReceipt: sales.RandomReceiptNumber,
	}
}

// CreateSale crea la venta con sus líneas iniciales. Asigna un número de
// comprobante único, congela el precio unitario de cada línea desde el precio
// vigente del producto y descuenta el stock. Si algún producto no tiene stock
// suficiente, toda la venta se descarta.
func (uc *CreateSaleUseCase) CreateSale(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	for _, item := range in.Items {
		if item.Cantidad <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}
	if in.ClienteID != nil {
		client, err := uc.clientRepo.GetByID(*in.ClienteID)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, domain.ErrNotFound
		}
	}
	if in.MedioDePagoID != nil {
		method, err := uc.methodRepo.GetByID(*in.MedioDePagoID)
		if err != nil {
			return nil, err
		}
		if method == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	txID := uuid.New().String()
	var sale *entity.Sale
	var lines []*entity.SaleLine

	// Los reintentos acotan el total de candidatos sorteados. La verificación
	// previa filtra los números ya tomados; si aun así el INSERT choca con el
	// índice único (otra transacción tomó el número entre la verificación y el
	// insert), la transacción completa se reintenta con un candidato nuevo.
	attempts := 0
	for {
		sale, lines = nil, nil
		err := uc.txRunner.RunBilling(ctx, func(
			saleRepo repository.SaleRepository,
			productRepo repository.ProductRepository,
			movRepo repository.StockMovementRepository,
		) error {
			// 1) Número de comprobante: candidatos aleatorios con verificación
			// de existencia dentro de la tx.
			number := ""
			for attempts < maxReceiptAttempts {
				attempts++
				candidate := uc.newReceipt()
				taken, err := saleRepo.ExistsByReceiptNumber(candidate)
				if err != nil {
					return err
				}
				if !taken {
					number = candidate
					break
				}
			}
			if number == "" {
				return domain.ErrReceiptExhausted
			}

			// 2) Cabecera con total en cero; se recalcula al final.
			sale = &entity.Sale{
				Date:            now,
				ReceiptNumber:   number,
				ClientID:        in.ClienteID,
				PaymentMethodID: in.MedioDePagoID,
				Total:           decimal.Zero,
			}
			if err := saleRepo.Create(sale); err != nil {
				return err
			}

			// 3) Líneas: precio congelado desde el producto, importe derivado,
			// descuento de stock con el comprobante de la venta como referencia.
			reference := fmt.Sprintf("Venta %s", number)
			for _, item := range in.Items {
				product, err := productRepo.GetByID(item.ProductoID)
				if err != nil {
					return err
				}
				if product == nil {
					return domain.ErrNotFound
				}
				line := &entity.SaleLine{
					SaleID:    sale.ID,
					ProductID: item.ProductoID,
					Quantity:  item.Cantidad,
					UnitPrice: product.Price,
					Subtotal:  sales.LineSubtotal(item.Cantidad, product.Price),
					CreatedAt: now,
				}
				if err := saleRepo.CreateLine(line); err != nil {
					return err
				}
				if err := uc.adjuster.AdjustInTx(productRepo, movRepo, item.ProductoID, -item.Cantidad, reference, now, txID); err != nil {
					return err
				}
				lines = append(lines, line)
			}

			// 4) Total de la venta = suma de importes.
			total := sales.SaleTotal(lines)
			if err := saleRepo.UpdateTotal(sale.ID, total); err != nil {
				return err
			}
			sale.Total = total
			return nil
		})
		switch {
		case err == nil:
			return toSaleResponse(sale, lines), nil
		case errors.Is(err, domain.ErrDuplicate):
			if attempts >= maxReceiptAttempts {
				return nil, domain.ErrReceiptExhausted
			}
		default:
			return nil, err
		}
	}
}
