package entity

// Supplier representa un proveedor de productos.
type Supplier struct {
	ID          int64
	Name        string
	ProductType string // tipo de producto que ofrece
	Phone       string
	Email       string
	Address     string
}
