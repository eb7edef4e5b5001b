package inventory_test

import (
	"context"

	"ferreteria-backend/internal/domain/entity"
	"ferreteria-backend/internal/domain/repository"
)

// Dobles en memoria para ejercitar el ajustador sin base de datos.

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

// fakeTxRunner invoca el callback con los repos en memoria, sin transacción.
type fakeTxRunner struct {
	productRepo *fakeProductRepo
	movRepo     *fakeMovementRepo
	orderRepo   repository.PurchaseOrderRepository
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
