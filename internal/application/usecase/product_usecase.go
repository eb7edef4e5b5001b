package usecase

import (
	"context"
	"time"

	"ferreteria-backend/internal/application/dto"
	"ferreteria-backend/internal/domain"
	"ferreteria-backend/internal/domain/entity"
	"ferreteria-backend/internal/domain/repository"
)

// ProductUseCase CRUD del catálogo de productos y consulta puntual de precio.
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// Create da de alta un producto. El stock inicial se fija aquí; a partir del
// alta solo cambia vía movimientos.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.CantidadStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		Name:        in.Nombre,
		Description: in.Descripcion,
		Price:       in.Precio,
		Stock:       in.CantidadStock,
		CategoryID:  in.CategoriaID,
		SupplierID:  in.ProveedorID,
		Image:       in.Imagen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Get devuelve un producto por ID.
func (uc *ProductUseCase) Get(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// GetPrice devuelve el precio vigente de un producto.
func (uc *ProductUseCase) GetPrice(ctx context.Context, id int64) (*dto.PriceResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.PriceResponse{Precio: product.Price}, nil
}

// List lista el catálogo con filtros por categoría, proveedor y búsqueda.
func (uc *ProductUseCase) List(ctx context.Context, in dto.ListProductsRequest) ([]dto.ProductResponse, error) {
	in.DefaultPage()
	products, err := uc.productRepo.List(repository.ProductFilter{
		CategoryID: in.CategoriaID,
		SupplierID: in.ProveedorID,
		Query:      in.Q,
		Limit:      in.Limit,
		Offset:     in.Offset,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// Update modifica los datos de catálogo de un producto. El stock no se toca.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	product.Name = in.Nombre
	product.Description = in.Descripcion
	product.Price = in.Precio
	product.CategoryID = in.CategoriaID
	product.SupplierID = in.ProveedorID
	product.Image = in.Imagen
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto. Movimientos y líneas de venta o pedido caen en
// cascada; las líneas de factura lo protegen con ErrProtected.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	return uc.productRepo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:            p.ID,
		Nombre:        p.Name,
		Descripcion:   p.Description,
		Precio:        p.Price,
		CantidadStock: p.Stock,
		CategoriaID:   p.CategoryID,
		ProveedorID:   p.SupplierID,
		Imagen:        p.Image,
	}
}
