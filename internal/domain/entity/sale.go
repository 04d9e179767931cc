package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de origen de una venta. "opening_balance" marca las ventas
// derivadas de una fila de saldo inicial importada.
const (
	SaleSourceOpeningBalance = "opening_balance"
)

// Sale es una transacción en dirección débito contra un cliente (aumenta lo
// que el cliente debe). Inmutable una vez creada; el estado de cuenta se
// recalcula, nunca se edita.
type Sale struct {
	ID          string
	CompanyID   string
	CustomerID  string
	SaleType    string
	SourceType  string
	SourceID    string
	TotalAmount decimal.Decimal
	Seq         int64 // secuencia de creación (bigserial); desempate del estado de cuenta
	CreatedAt   time.Time
	Items       []SaleItem
}

// SaleItem es una línea de una venta.
type SaleItem struct {
	ID        string
	SaleID    string
	ItemName  string
	Quantity  int
	UnitPrice decimal.Decimal
}
