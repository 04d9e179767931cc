package repository

import "github.com/belofte2025/belofte-sub001/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale y sus líneas.
// Las ventas son append-only: no hay Update.
type SaleRepository interface {
	// Create persiste la venta y sus líneas; rellena Seq y CreatedAt.
	Create(sale *entity.Sale) error
	// ListByCustomer devuelve las ventas del cliente dentro del tenant,
	// en orden de creación (seq ascendente).
	ListByCustomer(companyID, customerID string) ([]*entity.Sale, error)
	// ExistsOpeningBalance indica si el cliente ya tiene una venta derivada
	// de un saldo inicial importado.
	ExistsOpeningBalance(customerID string) (bool, error)
}
