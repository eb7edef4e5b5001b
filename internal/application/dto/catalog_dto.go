package dto

// CreateClientRequest alta de cliente.
type CreateClientRequest struct {
	Nombre    string `json:"nombre" validate:"required,max=100"`
	Apellido  string `json:"apellido" validate:"required,max=100"`
	Documento string `json:"documento" validate:"max=30"`
	Direccion string `json:"direccion" validate:"max=200"`
	Telefono  string `json:"telefono" validate:"max=30"`
	Email     string `json:"email" validate:"omitempty,email"`
}

// UpdateClientRequest modificación de cliente (reemplazo completo).
type UpdateClientRequest = CreateClientRequest

// ClientResponse cliente en respuestas. Compras solo se completa en el listado
// (cantidad de ventas no anuladas del cliente).
type ClientResponse struct {
	ID        int64  `json:"id"`
	Nombre    string `json:"nombre"`
	Apellido  string `json:"apellido"`
	Documento string `json:"documento"`
	Direccion string `json:"direccion"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email"`
	Compras   *int   `json:"compras,omitempty"`
}

// CreateCategoryRequest alta de categoría. El nombre es único.
type CreateCategoryRequest struct {
	Nombre      string `json:"nombre" validate:"required,max=100"`
	Descripcion string `json:"descripcion" validate:"max=500"`
}

// UpdateCategoryRequest modificación de categoría.
type UpdateCategoryRequest = CreateCategoryRequest

// CategoryResponse categoría en respuestas.
type CategoryResponse struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

// CreateSupplierRequest alta de proveedor.
type CreateSupplierRequest struct {
	Nombre       string `json:"nombre" validate:"required,max=100"`
	TipoProducto string `json:"tipo_producto" validate:"max=100"`
	Telefono     string `json:"telefono" validate:"max=30"`
	Email        string `json:"email" validate:"omitempty,email"`
	Direccion    string `json:"direccion" validate:"max=200"`
}

// UpdateSupplierRequest modificación de proveedor.
type UpdateSupplierRequest = CreateSupplierRequest

// SupplierResponse proveedor en respuestas.
type SupplierResponse struct {
	ID           int64  `json:"id"`
	Nombre       string `json:"nombre"`
	TipoProducto string `json:"tipo_producto"`
	Telefono     string `json:"telefono"`
	Email        string `json:"email"`
	Direccion    string `json:"direccion"`
}
