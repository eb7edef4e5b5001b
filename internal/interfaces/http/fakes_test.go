package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"ferreteria-backend/internal/application/billing"
	"ferreteria-backend/internal/application/inventory"
	"ferreteria-backend/internal/application/usecase"
	"ferreteria-backend/internal/domain/entity"
	"ferreteria-backend/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Entorno de prueba del router: repos en memoria detrás de los casos de uso
// reales, sin base de datos ni transacciones.
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	app *fiber.App

	clients   map[int64]*entity.Client
	methods   map[int64]*entity.PaymentMethod
	products  *memProductRepo
	movements *memMovementRepo
	sales     *memSaleRepo
}

func newTestEnv() *testEnv {
	env := &testEnv{
		clients:   make(map[int64]*entity.Client),
		methods:   make(map[int64]*entity.PaymentMethod),
		products:  newMemProductRepo(),
		movements: newMemMovementRepo(),
		sales:     newMemSaleRepo(),
	}
	clientRepo := &memClientRepo{clients: env.clients}
	methodRepo := &memMethodRepo{methods: env.methods}
	categoryRepo := &memCategoryRepo{categories: make(map[int64]*entity.Category)}
	supplierRepo := &memSupplierRepo{suppliers: map[int64]*entity.Supplier{1: {ID: 1, Name: "Ferrum SA"}}}
	orderRepo := newMemOrderRepo()
	invoiceRepo := newMemInvoiceRepo()
	runner := &memTxRunner{
		sales:     env.sales,
		products:  env.products,
		movements: env.movements,
		orders:    orderRepo,
	}
	adjuster := inventory.NewStockAdjuster()

	app := fiber.New()
	Router(app, RouterDeps{
		ClientUC:         usecase.NewClientUseCase(clientRepo, env.sales),
		CategoryUC:       usecase.NewCategoryUseCase(categoryRepo),
		SupplierUC:       usecase.NewSupplierUseCase(supplierRepo),
		ProductUC:        usecase.NewProductUseCase(env.products),
		PaymentMethodUC:  usecase.NewPaymentMethodUseCase(methodRepo),
		OrderUC:          usecase.NewPurchaseOrderUseCase(runner, adjuster, orderRepo, supplierRepo),
		InvoiceUC:        usecase.NewInvoiceUseCase(invoiceRepo, clientRepo),
		RegisterMovement: inventory.NewRegisterMovementUseCase(runner, adjuster, env.movements),
		CreateSale:       billing.NewCreateSaleUseCase(runner, adjuster, clientRepo, methodRepo),
		SaleLines:        billing.NewSaleLinesUseCase(runner, adjuster),
		VoidSale:         billing.NewVoidSaleUseCase(runner, adjuster),
		SaleQuery:        billing.NewSaleQueryUseCase(env.sales),
	})
	env.app = app
	return env
}

type memProductRepo struct {
	products map[int64]*entity.Product
	nextID   int64
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[int64]*entity.Product), nextID: 1}
}

func (m *memProductRepo) Create(p *entity.Product) error {
	p.ID = m.nextID
	m.nextID++
	cp := *p
	m.products[p.ID] = &cp
	return nil
}

func (m *memProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memProductRepo) GetForUpdate(id int64) (*entity.Product, error) { return m.GetByID(id) }

func (m *memProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range m.products {
		out = append(out, p)
	}
	return out, nil
}

func (m *memProductRepo) Update(p *entity.Product) error {
	cp := *p
	m.products[p.ID] = &cp
	return nil
}

func (m *memProductRepo) UpdateStock(id int64, stock int) error {
	m.products[id].Stock = stock
	return nil
}

func (m *memProductRepo) Delete(id int64) error {
	delete(m.products, id)
	return nil
}

type memMovementRepo struct {
	movements []*entity.StockMovement
	nextID    int64
}

func newMemMovementRepo() *memMovementRepo { return &memMovementRepo{nextID: 1} }

func (m *memMovementRepo) Create(mov *entity.StockMovement) error {
	mov.ID = m.nextID
	m.nextID++
	cp := *mov
	m.movements = append(m.movements, &cp)
	return nil
}

func (m *memMovementRepo) GetByID(id int64) (*entity.StockMovement, error) {
	for _, mov := range m.movements {
		if mov.ID == id {
			return mov, nil
		}
	}
	return nil, nil
}

func (m *memMovementRepo) List(filter repository.MovementFilter) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, mov := range m.movements {
		if filter.ProductID != nil && mov.ProductID != *filter.ProductID {
			continue
		}
		if filter.Type != "" && mov.Type != filter.Type {
			continue
		}
		out = append(out, mov)
	}
	return out, nil
}

func (m *memMovementRepo) ExistsByProductAndReference(productID int64, reference string) (bool, error) {
	for _, mov := range m.movements {
		if mov.ProductID == productID && mov.Reference == reference {
			return true, nil
		}
	}
	return false, nil
}

type memSaleRepo struct {
	sales      map[int64]*entity.Sale
	lines      map[int64]*entity.SaleLine
	nextID     int64
	nextLineID int64
}

func newMemSaleRepo() *memSaleRepo {
	return &memSaleRepo{
		sales:      make(map[int64]*entity.Sale),
		lines:      make(map[int64]*entity.SaleLine),
		nextID:     1,
		nextLineID: 1,
	}
}

func (m *memSaleRepo) Create(s *entity.Sale) error {
	s.ID = m.nextID
	m.nextID++
	cp := *s
	m.sales[s.ID] = &cp
	return nil
}

func (m *memSaleRepo) GetByID(id int64) (*entity.Sale, error) {
	s, ok := m.sales[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (m *memSaleRepo) GetForUpdate(id int64) (*entity.Sale, error) { return m.GetByID(id) }

func (m *memSaleRepo) List(filter repository.SaleFilter) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range m.sales {
		if !filter.IncludeVoided && s.Voided {
			continue
		}
		if filter.ClientID != nil && (s.ClientID == nil || *s.ClientID != *filter.ClientID) {
			continue
		}
		if filter.Query != "" && !strings.Contains(s.ReceiptNumber, filter.Query) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (m *memSaleRepo) ExistsByReceiptNumber(number string) (bool, error) {
	for _, s := range m.sales {
		if s.ReceiptNumber == number {
			return true, nil
		}
	}
	return false, nil
}

func (m *memSaleRepo) UpdateTotal(id int64, total decimal.Decimal) error {
	m.sales[id].Total = total
	return nil
}

func (m *memSaleRepo) SetVoided(id int64, voided bool) error {
	m.sales[id].Voided = voided
	return nil
}

func (m *memSaleRepo) CountByClient(clientID int64) (int, error) {
	n := 0
	for _, s := range m.sales {
		if s.ClientID != nil && *s.ClientID == clientID && !s.Voided {
			n++
		}
	}
	return n, nil
}

func (m *memSaleRepo) CreateLine(l *entity.SaleLine) error {
	l.ID = m.nextLineID
	m.nextLineID++
	cp := *l
	m.lines[l.ID] = &cp
	return nil
}

func (m *memSaleRepo) GetLineByID(id int64) (*entity.SaleLine, error) {
	l, ok := m.lines[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (m *memSaleRepo) UpdateLine(l *entity.SaleLine) error {
	cp := *l
	m.lines[l.ID] = &cp
	return nil
}

func (m *memSaleRepo) DeleteLine(id int64) error {
	delete(m.lines, id)
	return nil
}

func (m *memSaleRepo) ListLines(saleID int64) ([]*entity.SaleLine, error) {
	var out []*entity.SaleLine
	for _, l := range m.lines {
		if l.SaleID == saleID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memSaleRepo) SumLineSubtotals(saleID int64) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, l := range m.lines {
		if l.SaleID == saleID {
			total = total.Add(l.Subtotal)
		}
	}
	return total, nil
}

type memClientRepo struct {
	clients map[int64]*entity.Client
	nextID  int64
}

func (m *memClientRepo) Create(c *entity.Client) error {
	m.nextID++
	c.ID = m.nextID
	m.clients[c.ID] = c
	return nil
}

func (m *memClientRepo) GetByID(id int64) (*entity.Client, error) {
	c, ok := m.clients[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (m *memClientRepo) List() ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range m.clients {
		out = append(out, c)
	}
	return out, nil
}

func (m *memClientRepo) Update(c *entity.Client) error {
	m.clients[c.ID] = c
	return nil
}

func (m *memClientRepo) Delete(id int64) error {
	delete(m.clients, id)
	return nil
}

type memMethodRepo struct {
	methods map[int64]*entity.PaymentMethod
	nextID  int64
}

func (m *memMethodRepo) Create(pm *entity.PaymentMethod) error {
	m.nextID++
	pm.ID = m.nextID
	m.methods[pm.ID] = pm
	return nil
}

func (m *memMethodRepo) GetByID(id int64) (*entity.PaymentMethod, error) {
	pm, ok := m.methods[id]
	if !ok {
		return nil, nil
	}
	return pm, nil
}

func (m *memMethodRepo) GetByCode(code string) (*entity.PaymentMethod, error) {
	for _, pm := range m.methods {
		if pm.Code == code {
			return pm, nil
		}
	}
	return nil, nil
}

func (m *memMethodRepo) List() ([]*entity.PaymentMethod, error) {
	var out []*entity.PaymentMethod
	for _, pm := range m.methods {
		out = append(out, pm)
	}
	return out, nil
}

func (m *memMethodRepo) Delete(id int64) error {
	delete(m.methods, id)
	return nil
}

type memCategoryRepo struct {
	categories map[int64]*entity.Category
	nextID     int64
}

func (m *memCategoryRepo) Create(c *entity.Category) error {
	m.nextID++
	c.ID = m.nextID
	m.categories[c.ID] = c
	return nil
}

func (m *memCategoryRepo) GetByID(id int64) (*entity.Category, error) {
	c, ok := m.categories[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (m *memCategoryRepo) List() ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range m.categories {
		out = append(out, c)
	}
	return out, nil
}

func (m *memCategoryRepo) Update(c *entity.Category) error {
	m.categories[c.ID] = c
	return nil
}

func (m *memCategoryRepo) Delete(id int64) error {
	delete(m.categories, id)
	return nil
}

type memSupplierRepo struct {
	suppliers map[int64]*entity.Supplier
	nextID    int64
}

func (m *memSupplierRepo) Create(s *entity.Supplier) error {
	m.nextID++
	s.ID = m.nextID
	m.suppliers[s.ID] = s
	return nil
}

func (m *memSupplierRepo) GetByID(id int64) (*entity.Supplier, error) {
	s, ok := m.suppliers[id]
	if !ok {
		return nil, nil
	}
	return s, nil
}

func (m *memSupplierRepo) List() ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, s := range m.suppliers {
		out = append(out, s)
	}
	return out, nil
}

func (m *memSupplierRepo) Update(s *entity.Supplier) error {
	m.suppliers[s.ID] = s
	return nil
}

func (m *memSupplierRepo) Delete(id int64) error {
	delete(m.suppliers, id)
	return nil
}

type memOrderRepo struct {
	orders     map[int64]*entity.PurchaseOrder
	lines      map[int64]*entity.PurchaseOrderLine
	nextID     int64
	nextLineID int64
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{
		orders:     make(map[int64]*entity.PurchaseOrder),
		lines:      make(map[int64]*entity.PurchaseOrderLine),
		nextID:     1,
		nextLineID: 1,
	}
}

func (m *memOrderRepo) Create(o *entity.PurchaseOrder) error {
	o.ID = m.nextID
	m.nextID++
	cp := *o
	m.orders[o.ID] = &cp
	return nil
}

func (m *memOrderRepo) GetByID(id int64) (*entity.PurchaseOrder, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (m *memOrderRepo) GetForUpdate(id int64) (*entity.PurchaseOrder, error) { return m.GetByID(id) }

func (m *memOrderRepo) List() ([]*entity.PurchaseOrder, error) {
	var out []*entity.PurchaseOrder
	for _, o := range m.orders {
		out = append(out, o)
	}
	return out, nil
}

func (m *memOrderRepo) Update(o *entity.PurchaseOrder) error {
	cp := *o
	m.orders[o.ID] = &cp
	return nil
}

func (m *memOrderRepo) Delete(id int64) error {
	delete(m.orders, id)
	return nil
}

func (m *memOrderRepo) CreateLine(l *entity.PurchaseOrderLine) error {
	l.ID = m.nextLineID
	m.nextLineID++
	cp := *l
	m.lines[l.ID] = &cp
	return nil
}

func (m *memOrderRepo) ListLines(orderID int64) ([]*entity.PurchaseOrderLine, error) {
	var out []*entity.PurchaseOrderLine
	for _, l := range m.lines {
		if l.OrderID == orderID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memOrderRepo) DeleteLine(id int64) error {
	delete(m.lines, id)
	return nil
}

type memInvoiceRepo struct {
	invoices   map[int64]*entity.Invoice
	lines      map[int64]*entity.InvoiceLine
	nextID     int64
	nextLineID int64
}

func newMemInvoiceRepo() *memInvoiceRepo {
	return &memInvoiceRepo{
		invoices:   make(map[int64]*entity.Invoice),
		lines:      make(map[int64]*entity.InvoiceLine),
		nextID:     1,
		nextLineID: 1,
	}
}

func (m *memInvoiceRepo) Create(inv *entity.Invoice) error {
	inv.ID = m.nextID
	m.nextID++
	cp := *inv
	m.invoices[inv.ID] = &cp
	return nil
}

func (m *memInvoiceRepo) GetByID(id int64) (*entity.Invoice, error) {
	inv, ok := m.invoices[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (m *memInvoiceRepo) List() ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range m.invoices {
		out = append(out, inv)
	}
	return out, nil
}

func (m *memInvoiceRepo) Update(inv *entity.Invoice) error {
	cp := *inv
	m.invoices[inv.ID] = &cp
	return nil
}

func (m *memInvoiceRepo) Delete(id int64) error {
	delete(m.invoices, id)
	return nil
}

func (m *memInvoiceRepo) CreateLine(l *entity.InvoiceLine) error {
	l.ID = m.nextLineID
	m.nextLineID++
	cp := *l
	m.lines[l.ID] = &cp
	return nil
}

func (m *memInvoiceRepo) ListLines(invoiceID int64) ([]*entity.InvoiceLine, error) {
	var out []*entity.InvoiceLine
	for _, l := range m.lines {
		if l.InvoiceID == invoiceID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memInvoiceRepo) DeleteLine(id int64) error {
	delete(m.lines, id)
	return nil
}

func (m *memInvoiceRepo) Totals() (map[int64]decimal.Decimal, error) {
	totals := make(map[int64]decimal.Decimal)
	for _, l := range m.lines {
		totals[l.InvoiceID] = totals[l.InvoiceID].Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return totals, nil
}

func (m *memInvoiceRepo) Total(invoiceID int64) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, l := range m.lines {
		if l.InvoiceID == invoiceID {
			total = total.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
		}
	}
	return total, nil
}

// memTxRunner pasa los repos en memoria a los callbacks, sin transacción real.
type memTxRunner struct {
	sales     *memSaleRepo
	products  *memProductRepo
	movements *memMovementRepo
	orders    *memOrderRepo
}

func (r *memTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	return fn(r.products, r.movements)
}

func (r *memTxRunner) RunOrders(ctx context.Context, fn func(
	orderRepo repository.PurchaseOrderRepository,
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	return fn(r.orders, r.products, r.movements)
}

func (r *memTxRunner) RunBilling(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	return fn(r.sales, r.products, r.movements)
}
