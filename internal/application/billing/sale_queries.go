package billing

import (
	"context"

	"ferreteria-backend/internal/application/dto"
	"ferreteria-backend/internal/domain"
	"ferreteria-backend/internal/domain/entity"
	"ferreteria-backend/internal/domain/repository"
)

// SaleQueryUseCase lecturas sobre ventas: detalle, listado y compras por
// cliente.
type SaleQueryUseCase struct {
	saleRepo repository.SaleRepository
}

// NewSaleQueryUseCase construye el caso de uso.
func NewSaleQueryUseCase(saleRepo repository.SaleRepository) *SaleQueryUseCase {
	return &SaleQueryUseCase{saleRepo: saleRepo}
}

// GetSale devuelve la venta con sus líneas.
func (uc *SaleQueryUseCase) GetSale(ctx context.Context, id int64) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.saleRepo.ListLines(id)
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale, lines), nil
}

// ListSales lista ventas; por defecto excluye las anuladas. Q busca por número
// de comprobante o nombre del cliente.
func (uc *SaleQueryUseCase) ListSales(ctx context.Context, in dto.ListSalesRequest) ([]dto.SaleResponse, error) {
	in.DefaultPage()
	list, err := uc.saleRepo.List(repository.SaleFilter{
		Query:         in.Q,
		IncludeVoided: in.IncluirAnuladas,
		Limit:         in.Limit,
		Offset:        in.Offset,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toSaleResponse(s, nil))
	}
	return out, nil
}

// ListClientPurchases lista las compras (ventas no anuladas) de un cliente.
func (uc *SaleQueryUseCase) ListClientPurchases(ctx context.Context, clientID int64, page dto.PageRequest) ([]dto.SaleResponse, error) {
	page.DefaultPage()
	list, err := uc.saleRepo.List(repository.SaleFilter{
		ClientID: &clientID,
		Limit:    page.Limit,
		Offset:   page.Offset,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toSaleResponse(s, nil))
	}
	return out, nil
}

func toSaleResponse(sale *entity.Sale, lines []*entity.SaleLine) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:                sale.ID,
		Fecha:             sale.Date,
		NumeroComprobante: sale.ReceiptNumber,
		ClienteID:         sale.ClientID,
		MedioDePagoID:     sale.PaymentMethodID,
		ImporteTotal:      sale.Total,
		Anulada:           sale.Voided,
	}
	for _, l := range lines {
		resp.Items = append(resp.Items, dto.SaleLineResponse{
			ID:             l.ID,
			ProductoID:     l.ProductID,
			Cantidad:       l.Quantity,
			PrecioUnitario: l.UnitPrice,
			Importe:        l.Subtotal,
		})
	}
	return resp
}
