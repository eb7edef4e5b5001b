package usecase_test

import (
	"context"

	"github.com/shopspring/decimal"

	"ferreteria-backend/internal/domain/entity"
	"ferreteria-backend/internal/domain/repository"
)

// Dobles en memoria de los repositorios usados por los casos de uso.

type fakeProductRepo struct {
	products map[int64]*entity.Product
	nextID   int64
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[int64]*entity.Product), nextID: 1}
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	p.ID = f.nextID
	f.nextID++
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) GetForUpdate(id int64) (*entity.Product, error) {
	return f.GetByID(id)
}

func (f *fakeProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductRepo) Update(p *entity.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) UpdateStock(id int64, stock int) error {
	f.products[id].Stock = stock
	return nil
}

func (f *fakeProductRepo) Delete(id int64) error {
	delete(f.products, id)
	return nil
}

type fakeMovementRepo struct {
	movements []*entity.StockMovement
	nextID    int64
}

func newFakeMovementRepo() *fakeMovementRepo {
	return &fakeMovementRepo{nextID: 1}
}

func (f *fakeMovementRepo) Create(m *entity.StockMovement) error {
	m.ID = f.nextID
	f.nextID++
	cp := *m
	f.movements = append(f.movements, &cp)
	return nil
}

func (f *fakeMovementRepo) GetByID(id int64) (*entity.StockMovement, error) {
	for _, m := range f.movements {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeMovementRepo) List(filter repository.MovementFilter) ([]*entity.StockMovement, error) {
	return f.movements, nil
}

func (f *fakeMovementRepo) ExistsByProductAndReference(productID int64, reference string) (bool, error) {
	for _, m := range f.movements {
		if m.ProductID == productID && m.Reference == reference {
			return true, nil
		}
	}
	return false, nil
}

type fakeOrderRepo struct {
	orders     map[int64]*entity.PurchaseOrder
	lines      map[int64]*entity.PurchaseOrderLine
	nextID     int64
	nextLineID int64
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders:     make(map[int64]*entity.PurchaseOrder),
		lines:      make(map[int64]*entity.PurchaseOrderLine),
		nextID:     1,
		nextLineID: 1,
	}
}

func (f *fakeOrderRepo) Create(o *entity.PurchaseOrder) error {
	o.ID = f.nextID
	f.nextID++
	cp := *o
	f.orders[o.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) GetByID(id int64) (*entity.PurchaseOrder, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) GetForUpdate(id int64) (*entity.PurchaseOrder, error) {
	return f.GetByID(id)
}

func (f *fakeOrderRepo) List() ([]*entity.PurchaseOrder, error) {
	var out []*entity.PurchaseOrder
	for _, o := range f.orders {
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeOrderRepo) Update(o *entity.PurchaseOrder) error {
	cp := *o
	f.orders[o.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) Delete(id int64) error {
	delete(f.orders, id)
	return nil
}

func (f *fakeOrderRepo) CreateLine(l *entity.PurchaseOrderLine) error {
	l.ID = f.nextLineID
	f.nextLineID++
	cp := *l
	f.lines[l.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) ListLines(orderID int64) ([]*entity.PurchaseOrderLine, error) {
	var out []*entity.PurchaseOrderLine
	for _, l := range f.lines {
		if l.OrderID == orderID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) DeleteLine(id int64) error {
	delete(f.lines, id)
	return nil
}

type fakeSupplierRepo struct {
	suppliers map[int64]*entity.Supplier
}

func (f *fakeSupplierRepo) Create(s *entity.Supplier) error { f.suppliers[s.ID] = s; return nil }
func (f *fakeSupplierRepo) GetByID(id int64) (*entity.Supplier, error) {
	s, ok := f.suppliers[id]
	if !ok {
		return nil, nil
	}
	return s, nil
}
func (f *fakeSupplierRepo) List() ([]*entity.Supplier, error) { return nil, nil }
func (f *fakeSupplierRepo) Update(s *entity.Supplier) error   { return nil }
func (f *fakeSupplierRepo) Delete(id int64) error             { return nil }

type fakeClientRepo struct {
	clients map[int64]*entity.Client
}

func (f *fakeClientRepo) Create(c *entity.Client) error { f.clients[c.ID] = c; return nil }
func (f *fakeClientRepo) GetByID(id int64) (*entity.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}
func (f *fakeClientRepo) List() ([]*entity.Client, error) { return nil, nil }
func (f *fakeClientRepo) Update(c *entity.Client) error   { return nil }
func (f *fakeClientRepo) Delete(id int64) error           { return nil }

type fakeInvoiceRepo struct {
	invoices   map[int64]*entity.Invoice
	lines      map[int64]*entity.InvoiceLine
	nextID     int64
	nextLineID int64
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{
		invoices:   make(map[int64]*entity.Invoice),
		lines:      make(map[int64]*entity.InvoiceLine),
		nextID:     1,
		nextLineID: 1,
	}
}

func (f *fakeInvoiceRepo) Create(inv *entity.Invoice) error {
	inv.ID = f.nextID
	f.nextID++
	cp := *inv
	f.invoices[inv.ID] = &cp
	return nil
}

func (f *fakeInvoiceRepo) GetByID(id int64) (*entity.Invoice, error) {
	inv, ok := f.invoices[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (f *fakeInvoiceRepo) List() ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range f.invoices {
		out = append(out, inv)
	}
	return out, nil
}

func (f *fakeInvoiceRepo) Update(inv *entity.Invoice) error {
	cp := *inv
	f.invoices[inv.ID] = &cp
	return nil
}

func (f *fakeInvoiceRepo) Delete(id int64) error {
	delete(f.invoices, id)
	return nil
}

func (f *fakeInvoiceRepo) CreateLine(l *entity.InvoiceLine) error {
	l.ID = f.nextLineID
	f.nextLineID++
	cp := *l
	f.lines[l.ID] = &cp
	return nil
}

func (f *fakeInvoiceRepo) ListLines(invoiceID int64) ([]*entity.InvoiceLine, error) {
	var out []*entity.InvoiceLine
	for _, l := range f.lines {
		if l.InvoiceID == invoiceID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeInvoiceRepo) DeleteLine(id int64) error {
	delete(f.lines, id)
	return nil
}

func (f *fakeInvoiceRepo) Total(invoiceID int64) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, l := range f.lines {
		if l.InvoiceID == invoiceID {
			total = total.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
		}
	}
	return total, nil
}

func (f *fakeInvoiceRepo) Totals() (map[int64]decimal.Decimal, error) {
	totals := make(map[int64]decimal.Decimal)
	for _, l := range f.lines {
		totals[l.InvoiceID] = totals[l.InvoiceID].Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return totals, nil
}

// fakeTxRunner invoca los callbacks con los repos en memoria, sin transacción.
type fakeTxRunner struct {
	orderRepo   *fakeOrderRepo
	productRepo *fakeProductRepo
	movRepo     *fakeMovementRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	return fn(r.productRepo, r.movRepo)
}

func (r *fakeTxRunner) RunOrders(ctx context.Context, fn func(
	orderRepo repository.PurchaseOrderRepository,
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	return fn(r.orderRepo, r.productRepo, r.movRepo)
}
