package dto

import "github.com/shopspring/decimal"

// CreateProductRequest alta de producto en el catálogo.
type CreateProductRequest struct {
	Nombre        string          `json:"nombre" validate:"required,max=150"`
	Descripcion   string          `json:"descripcion" validate:"max=1000"`
	Precio        decimal.Decimal `json:"precio"`
	CantidadStock int             `json:"cantidad_stock" validate:"min=0"`
	CategoriaID   *int64          `json:"categoria_id"`
	ProveedorID   *int64          `json:"proveedor_id"`
	Imagen        string          `json:"imagen" validate:"max=300"`
}

// UpdateProductRequest modificación de producto. No incluye cantidad_stock:
// el stock solo cambia a través de movimientos.
type UpdateProductRequest struct {
	Nombre      string          `json:"nombre" validate:"required,max=150"`
	Descripcion string          `json:"descripcion" validate:"max=1000"`
	Precio      decimal.Decimal `json:"precio"`
	CategoriaID *int64          `json:"categoria_id"`
	ProveedorID *int64          `json:"proveedor_id"`
	Imagen      string          `json:"imagen" validate:"max=300"`
}

// ListProductsRequest filtros del catálogo (query params).
type ListProductsRequest struct {
	CategoriaID *int64 `query:"categoria_id"`
	ProveedorID *int64 `query:"proveedor_id"`
	Q           string `query:"q"`
	PageRequest
}

// ProductResponse producto en respuestas.
type ProductResponse struct {
	ID            int64           `json:"id"`
	Nombre        string          `json:"nombre"`
	Descripcion   string          `json:"descripcion"`
	Precio        decimal.Decimal `json:"precio"`
	CantidadStock int             `json:"cantidad_stock"`
	CategoriaID   *int64          `json:"categoria_id"`
	ProveedorID   *int64          `json:"proveedor_id"`
	Imagen        string          `json:"imagen"`
}

// PriceResponse respuesta de la consulta puntual de precio.
type PriceResponse struct {
	Precio decimal.Decimal `json:"precio"`
}
