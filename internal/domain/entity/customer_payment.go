package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de pago. "opening_balance" marca los pagos derivados de una fila de
// saldo inicial importada con balanceType=credit.
const (
	PaymentTypeOpeningBalance = "opening_balance"
)

// CustomerPayment es una transacción en dirección crédito contra un cliente
// (reduce lo que el cliente debe). Inmutable una vez creada.
type CustomerPayment struct {
	ID          string
	CompanyID   string
	CustomerID  string
	Amount      decimal.Decimal
	Note        string
	PaymentType string
	Seq         int64 // secuencia de creación (bigserial); desempate del estado de cuenta
	CreatedAt   time.Time
}
