package repository

import "github.com/belofte2025/belofte-sub001/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (tenant).
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	List() ([]*entity.Company, error)
}
