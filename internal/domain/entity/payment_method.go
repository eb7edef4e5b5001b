package entity

// Códigos de medio de pago (enumeración fija, código único).
const (
	PaymentCash         = "EF" // Efectivo
	PaymentCreditCard   = "TC" // Tarjeta de Crédito
	PaymentDebitCard    = "TD" // Tarjeta de Débito
	PaymentBankTransfer = "TR" // Transferencia Bancaria
)

// PaymentMethod representa un medio de pago disponible.
type PaymentMethod struct {
	ID   int64
	Code string // EF | TC | TD | TR
}

// paymentLabels nombres legibles por código.
var paymentLabels = map[string]string{
	PaymentCash:         "Efectivo",
	PaymentCreditCard:   "Tarjeta de Crédito",
	PaymentDebitCard:    "Tarjeta de Débito",
	PaymentBankTransfer: "Transferencia Bancaria",
}

// ValidPaymentCode indica si el código pertenece a la enumeración.
func ValidPaymentCode(code string) bool {
	_, ok := paymentLabels[code]
	return ok
}

// Label devuelve el nombre legible del medio de pago.
func (m PaymentMethod) Label() string {
	if l, ok := paymentLabels[m.Code]; ok {
		return l
	}
	return m.Code
}
