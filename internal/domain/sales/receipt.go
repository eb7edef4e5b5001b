package sales

import (
	"math/rand/v2"
	"strconv"
)

// Dimensiones del número de comprobante: numeral de 13 dígitos,
// uniforme en [10^12, 10^13).
const (
	ReceiptDigits = 13

	receiptMin  = 1_000_000_000_000
	receiptSpan = 9_000_000_000_000
)

// RandomReceiptNumber genera un número de comprobante aleatorio de 13 dígitos.
// La unicidad no se garantiza aquí: el caso de uso verifica contra las ventas
// existentes y reintenta con un valor fresco en caso de colisión.
func RandomReceiptNumber() string {
	n := receiptMin + rand.Int64N(receiptSpan)
	return strconv.FormatInt(n, 10)
}

// ValidReceiptNumber indica si s es un numeral de exactamente 13 dígitos
// dentro del rango generable.
func ValidReceiptNumber(s string) bool {
	if len(s) != ReceiptDigits {
		return false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return false
	}
	return n >= receiptMin && n < receiptMin+receiptSpan
}
