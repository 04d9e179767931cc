package repository

import "github.com/belofte2025/belofte-sub001/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	// GetByCompanyAndName resuelve un cliente por nombre dentro del tenant,
	// sin distinguir mayúsculas. Devuelve (nil, nil) si no existe.
	GetByCompanyAndName(companyID, customerName string) (*entity.Customer, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id string) error
}
