package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordPaymentRequest registra un pago de cliente.
type RecordPaymentRequest struct {
	CustomerID  string          `json:"customerId"`
	Amount      decimal.Decimal `json:"amount"`
	Note        string          `json:"note"`
	PaymentType string          `json:"paymentType"`
}

// PaymentResponse representación HTTP de un pago.
type PaymentResponse struct {
	ID          string          `json:"id"`
	CustomerID  string          `json:"customerId"`
	Amount      decimal.Decimal `json:"amount"`
	Note        string          `json:"note"`
	PaymentType string          `json:"paymentType"`
	CreatedAt   time.Time       `json:"createdAt"`
}
