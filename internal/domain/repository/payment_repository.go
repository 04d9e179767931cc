package repository

import "github.com/belofte2025/belofte-sub001/internal/domain/entity"

// PaymentRepository define el puerto de persistencia para CustomerPayment.
// Los pagos son append-then-delete: no hay Update.
type PaymentRepository interface {
	// Create persiste el pago; rellena Seq y CreatedAt.
	Create(payment *entity.CustomerPayment) error
	GetByID(id string) (*entity.CustomerPayment, error)
	// ListByCustomer devuelve los pagos del cliente dentro del tenant,
	// en orden de creación (seq ascendente).
	ListByCustomer(companyID, customerID string) ([]*entity.CustomerPayment, error)
	// ListByCustomerDesc devuelve los pagos más recientes primero (historial).
	ListByCustomerDesc(companyID, customerID string) ([]*entity.CustomerPayment, error)
	// ExistsOpeningBalance indica si el cliente ya tiene un pago derivado
	// de un saldo inicial importado.
	ExistsOpeningBalance(customerID string) (bool, error)
	Delete(id string) error
}
