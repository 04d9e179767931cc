package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/belofte2025/belofte-sub001/internal/domain"
	"github.com/belofte2025/belofte-sub001/internal/domain/entity"
	"github.com/belofte2025/belofte-sub001/internal/domain/repository"
)

// CompanyUseCase casos de uso para empresas (tenants).
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create crea una nueva empresa.
func (uc *CompanyUseCase) Create(companyName, address, phone string) (*entity.Company, error) {
	name := strings.TrimSpace(companyName)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	company := &entity.Company{
		ID:          uuid.New().String(),
		CompanyName: name,
		Address:     strings.TrimSpace(address),
		Phone:       strings.TrimSpace(phone),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	return company, nil
}

// GetByID obtiene una empresa por ID.
func (uc *CompanyUseCase) GetByID(id string) (*entity.Company, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return company, nil
}

// List lista todas las empresas.
func (uc *CompanyUseCase) List() ([]*entity.Company, error) {
	return uc.repo.List()
}
