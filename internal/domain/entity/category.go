package entity

// Category representa una categoría de productos. Nombre único.
// Al eliminarla, los productos quedan sin categoría (SET NULL), no se borran.
type Category struct {
	ID          int64
	Name        string
	Description string
}
