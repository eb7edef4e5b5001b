package billing

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"ferreteria-backend/internal/domain"
	"ferreteria-backend/internal/domain/entity"
	"ferreteria-backend/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria de los repositorios. El runner de transacciones de prueba
// no simula rollback: los tests verifican errores, no el estado tras un fallo
// parcial.
// ──────────────────────────────────────────────────────────────────────────────

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
	var out []*entity.StockMovement
	for _, m := range f.movements {
		if filter.ProductID != nil && m.ProductID != *filter.ProductID {
			continue
		}
		if filter.Type != "" && m.Type != filter.Type {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeMovementRepo) ExistsByProductAndReference(productID int64, reference string) (bool, error) {
	for _, m := range f.movements {
		if m.ProductID == productID && m.Reference == reference {
			return true, nil
		}
	}
	return false, nil
}

type fakeSaleRepo struct {
	sales      map[int64]*entity.Sale
	lines      map[int64]*entity.SaleLine
	nextID     int64
	nextLineID int64

	// duplicateCreates hace fallar los próximos N Create con ErrDuplicate,
	// como si otra transacción hubiera tomado el número entre la verificación
	// y el insert.
	duplicateCreates int
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{
		sales:      make(map[int64]*entity.Sale),
		lines:      make(map[int64]*entity.SaleLine),
		nextID:     1,
		nextLineID: 1,
	}
}

func (f *fakeSaleRepo) Create(s *entity.Sale) error {
	if f.duplicateCreates > 0 {
		f.duplicateCreates--
		return domain.ErrDuplicate
	}
	s.ID = f.nextID
	f.nextID++
	cp := *s
	f.sales[s.ID] = &cp
	return nil
}

func (f *fakeSaleRepo) GetByID(id int64) (*entity.Sale, error) {
	s, ok := f.sales[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSaleRepo) GetForUpdate(id int64) (*entity.Sale, error) {
	return f.GetByID(id)
}

func (f *fakeSaleRepo) List(filter repository.SaleFilter) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range f.sales {
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

func (f *fakeSaleRepo) ExistsByReceiptNumber(number string) (bool, error) {
	for _, s := range f.sales {
		if s.ReceiptNumber == number {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSaleRepo) UpdateTotal(id int64, total decimal.Decimal) error {
	f.sales[id].Total = total
	return nil
}

func (f *fakeSaleRepo) SetVoided(id int64, voided bool) error {
	f.sales[id].Voided = voided
	return nil
}

func (f *fakeSaleRepo) CountByClient(clientID int64) (int, error) {
	n := 0
	for _, s := range f.sales {
		if s.ClientID != nil && *s.ClientID == clientID && !s.Voided {
			n++
		}
	}
	return n, nil
}

func (f *fakeSaleRepo) CreateLine(l *entity.SaleLine) error {
	l.ID = f.nextLineID
	f.nextLineID++
	cp := *l
	f.lines[l.ID] = &cp
	return nil
}

func (f *fakeSaleRepo) GetLineByID(id int64) (*entity.SaleLine, error) {
	l, ok := f.lines[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (f *fakeSaleRepo) UpdateLine(l *entity.SaleLine) error {
	cp := *l
	f.lines[l.ID] = &cp
	return nil
}

func (f *fakeSaleRepo) DeleteLine(id int64) error {
	delete(f.lines, id)
	return nil
}

func (f *fakeSaleRepo) ListLines(saleID int64) ([]*entity.SaleLine, error) {
	var out []*entity.SaleLine
	for _, l := range f.lines {
		if l.SaleID == saleID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeSaleRepo) SumLineSubtotals(saleID int64) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, l := range f.lines {
		if l.SaleID == saleID {
			total = total.Add(l.Subtotal)
		}
	}
	return total, nil
}

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

type fakeMethodRepo struct {
	methods map[int64]*entity.PaymentMethod
}

func (f *fakeMethodRepo) Create(m *entity.PaymentMethod) error { f.methods[m.ID] = m; return nil }
func (f *fakeMethodRepo) GetByID(id int64) (*entity.PaymentMethod, error) {
	m, ok := f.methods[id]
	if !ok {
		return nil, nil
	}
	return m, nil
}
func (f *fakeMethodRepo) GetByCode(code string) (*entity.PaymentMethod, error) { return nil, nil }
func (f *fakeMethodRepo) List() ([]*entity.PaymentMethod, error)               { return nil, nil }
func (f *fakeMethodRepo) Delete(id int64) error                                { return nil }

// fakeTxRunner pasa los repos en memoria al callback, sin transacción real.
type fakeTxRunner struct {
	saleRepo    *fakeSaleRepo
	productRepo *fakeProductRepo
	movRepo     *fakeMovementRepo
}

func (r *fakeTxRunner) RunBilling(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	return fn(r.saleRepo, r.productRepo, r.movRepo)
}
