package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/belofte2025/belofte-sub001/internal/application/dto"
	"github.com/belofte2025/belofte-sub001/internal/domain"
	"github.com/belofte2025/belofte-sub001/internal/domain/entity"
	"github.com/belofte2025/belofte-sub001/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD para proveedores y sus artículos.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create crea un nuevo proveedor dentro del tenant.
func (uc *SupplierUseCase) Create(companyID string, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	name := strings.TrimSpace(in.SupplierName)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByCompanyAndName(companyID, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	supplier := &entity.Supplier{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		SupplierName: name,
		Contact:      strings.TrimSpace(in.Contact),
		Country:      strings.TrimSpace(in.Country),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// List lista los proveedores del tenant con paginación.
func (uc *SupplierUseCase) List(companyID string, limit, offset int) ([]*dto.SupplierResponse, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	suppliers, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, toSupplierResponse(s))
	}
	return out, nil
}

// ListItems lista los artículos de un proveedor del tenant.
func (uc *SupplierUseCase) ListItems(companyID, supplierID string) ([]*dto.SupplierItemResponse, error) {
	supplier, err := uc.repo.GetByID(supplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	if supplier.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	items, err := uc.repo.ListItems(supplierID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SupplierItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, &dto.SupplierItemResponse{
			ID:         it.ID,
			SupplierID: it.SupplierID,
			ItemName:   it.ItemName,
			Price:      it.Price,
			CreatedAt:  it.CreatedAt,
		})
	}
	return out, nil
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:           s.ID,
		CompanyID:    s.CompanyID,
		SupplierName: s.SupplierName,
		Contact:      s.Contact,
		Country:      s.Country,
		CreatedAt:    s.CreatedAt,
	}
}
