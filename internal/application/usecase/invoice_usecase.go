package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"ferreteria-backend/internal/application/dto"
	"ferreteria-backend/internal/domain"
	"ferreteria-backend/internal/domain/entity"
	"ferreteria-backend/internal/domain/repository"
)

// InvoiceUseCase facturas con sus líneas. El importe total nunca se almacena:
// se deriva de las líneas en cada lectura.
type InvoiceUseCase struct {
	invoiceRepo repository.InvoiceRepository
	clientRepo  repository.ClientRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(invoiceRepo repository.InvoiceRepository, clientRepo repository.ClientRepository) *InvoiceUseCase {
	return &InvoiceUseCase{invoiceRepo: invoiceRepo, clientRepo: clientRepo}
}

// Create da de alta una factura con sus líneas.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	for _, item := range in.Items {
		if item.Cantidad <= 0 || item.PrecioUnitario.LessThan(decimal.Zero) {
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

	invoice := &entity.Invoice{Date: time.Now(), ClientID: in.ClienteID}
	if err := uc.invoiceRepo.Create(invoice); err != nil {
		return nil, err
	}
	var lines []*entity.InvoiceLine
	for _, item := range in.Items {
		line := &entity.InvoiceLine{
			InvoiceID:       invoice.ID,
			ProductID:       item.ProductoID,
			Quantity:        item.Cantidad,
			UnitPrice:       item.PrecioUnitario,
			PaymentMethodID: item.MedioDePagoID,
		}
		if err := uc.invoiceRepo.CreateLine(line); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	total, err := uc.invoiceRepo.Total(invoice.ID)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice, lines, total), nil
}

// Get devuelve una factura con sus líneas y el total derivado.
func (uc *InvoiceUseCase) Get(ctx context.Context, id int64) (*dto.InvoiceResponse, error) {
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.invoiceRepo.ListLines(id)
	if err != nil {
		return nil, err
	}
	total, err := uc.invoiceRepo.Total(id)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice, lines, total), nil
}

// List devuelve todas las facturas con su total derivado, sin líneas. Los
// totales se calculan con una sola consulta agrupada.
func (uc *InvoiceUseCase) List(ctx context.Context) ([]dto.InvoiceResponse, error) {
	invoices, err := uc.invoiceRepo.List()
	if err != nil {
		return nil, err
	}
	totals, err := uc.invoiceRepo.Totals()
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		total, ok := totals[inv.ID]
		if !ok {
			total = decimal.Zero
		}
		out = append(out, *toInvoiceResponse(inv, nil, total))
	}
	return out, nil
}

// Delete elimina una factura junto con sus líneas.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id int64) error {
	return uc.invoiceRepo.Delete(id)
}

func toInvoiceResponse(inv *entity.Invoice, lines []*entity.InvoiceLine, total decimal.Decimal) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:           inv.ID,
		Fecha:        inv.Date,
		ClienteID:    inv.ClientID,
		ImporteTotal: total,
	}
	for _, l := range lines {
		resp.Items = append(resp.Items, dto.InvoiceLineResponse{
			ID:             l.ID,
			ProductoID:     l.ProductID,
			Cantidad:       l.Quantity,
			PrecioUnitario: l.UnitPrice,
			MedioDePagoID:  l.PaymentMethodID,
		})
	}
	return resp
}
