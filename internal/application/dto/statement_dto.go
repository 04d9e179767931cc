package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Clases de entrada del estado de cuenta.
const (
	StatementKindSale    = "sale"
	StatementKindPayment = "payment"
)

// StatementEntry es una entrada derivada del estado de cuenta de un cliente:
// venta o pago con el saldo acumulado después de aplicarla. Nunca se persiste.
type StatementEntry struct {
	Kind    string          `json:"kind"`
	Date    time.Time       `json:"date"`
	Amount  decimal.Decimal `json:"amount"`
	Detail  string          `json:"detail"`
	Balance decimal.Decimal `json:"balance"`
}
