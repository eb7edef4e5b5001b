package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ferreteria-backend/internal/application/dto"
	"ferreteria-backend/internal/application/inventory"
	"ferreteria-backend/internal/domain"
	"ferreteria-backend/internal/domain/entity"
	"ferreteria-backend/internal/domain/repository"
)

// PurchaseOrderUseCase pedidos a proveedores: CRUD y recepción. Al marcar un
// pedido como recibido, el stock de cada línea entra al inventario en una sola
// transacción.
type PurchaseOrderUseCase struct {
	txRunner     inventory.TxRunner
	adjuster     *inventory.StockAdjuster
	orderRepo    repository.PurchaseOrderRepository
	supplierRepo repository.SupplierRepository
}

// NewPurchaseOrderUseCase construye el caso de uso.
func NewPurchaseOrderUseCase(
	txRunner inventory.TxRunner,
	adjuster *inventory.StockAdjuster,
	orderRepo repository.PurchaseOrderRepository,
	supplierRepo repository.SupplierRepository,
) *PurchaseOrderUseCase {
	return &PurchaseOrderUseCase{
		txRunner:     txRunner,
		adjuster:     adjuster,
		orderRepo:    orderRepo,
		supplierRepo: supplierRepo,
	}
}

// Create da de alta un pedido con sus líneas. El precio unitario de cada línea
// es el acordado con el proveedor; no se congela desde el catálogo.
func (uc *PurchaseOrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	for _, item := range in.Items {
		if item.Cantidad <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}
	supplier, err := uc.supplierRepo.GetByID(in.ProveedorID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	var order *entity.PurchaseOrder
	var lines []*entity.PurchaseOrderLine

	err = uc.txRunner.RunOrders(ctx, func(
		orderRepo repository.PurchaseOrderRepository,
		_ repository.ProductRepository,
		_ repository.StockMovementRepository,
	) error {
		order = &entity.PurchaseOrder{SupplierID: in.ProveedorID, OrderedAt: now}
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		for _, item := range in.Items {
			line := &entity.PurchaseOrderLine{
				OrderID:   order.ID,
				ProductID: item.ProductoID,
				Quantity:  item.Cantidad,
				UnitPrice: item.PrecioUnitario,
			}
			if err := orderRepo.CreateLine(line); err != nil {
				return err
			}
			lines = append(lines, line)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toOrderResponse(order, lines), nil
}

// Get devuelve un pedido con sus líneas.
func (uc *PurchaseOrderUseCase) Get(ctx context.Context, id int64) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.orderRepo.ListLines(id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order, lines), nil
}

// List devuelve todos los pedidos, sin líneas.
func (uc *PurchaseOrderUseCase) List(ctx context.Context) ([]dto.OrderResponse, error) {
	orders, err := uc.orderRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, *toOrderResponse(o, nil))
	}
	return out, nil
}

// MarkReceived marca el pedido como recibido y da entrada al stock de cada
// línea. Recibir un pedido ya recibido devuelve ErrConflict: la mercadería
// entra a lo sumo una vez.
func (uc *PurchaseOrderUseCase) MarkReceived(ctx context.Context, id int64) error {
	now := time.Now()
	txID := uuid.New().String()

	return uc.txRunner.RunOrders(ctx, func(
		orderRepo repository.PurchaseOrderRepository,
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
	) error {
		order, err := orderRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.Received {
			return domain.ErrConflict
		}

		lines, err := orderRepo.ListLines(id)
		if err != nil {
			return err
		}
		reference := fmt.Sprintf("Pedido %d", order.ID)
		for _, line := range lines {
			if err := uc.adjuster.AdjustInTx(productRepo, movRepo, line.ProductID, line.Quantity, reference, now, txID); err != nil {
				return err
			}
		}

		order.Received = true
		return orderRepo.Update(order)
	})
}

// Delete elimina un pedido junto con sus líneas.
func (uc *PurchaseOrderUseCase) Delete(ctx context.Context, id int64) error {
	return uc.orderRepo.Delete(id)
}

func toOrderResponse(o *entity.PurchaseOrder, lines []*entity.PurchaseOrderLine) *dto.OrderResponse {
	resp := &dto.OrderResponse{
		ID:          o.ID,
		ProveedorID: o.SupplierID,
		FechaPedido: o.OrderedAt,
		Recibido:    o.Received,
	}
	for _, l := range lines {
		resp.Items = append(resp.Items, dto.OrderLineResponse{
			ID:             l.ID,
			ProductoID:     l.ProductID,
			Cantidad:       l.Quantity,
			PrecioUnitario: l.UnitPrice,
		})
	}
	return resp
}
