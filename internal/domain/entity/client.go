package entity

// Client representa un cliente de la ferretería.
// Referenciado por Sale (borrado en cascada) y por Invoice (borrado protegido).
type Client struct {
	ID        int64
	FirstName string // nombre
	LastName  string // apellido
	Document  string // documento de identidad
	Address   string
	Phone     string
	Email     string
}
