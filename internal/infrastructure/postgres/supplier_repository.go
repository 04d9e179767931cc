package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/belofte2025/belofte-sub001/internal/domain"
	"github.com/belofte2025/belofte-sub001/internal/domain/entity"
	"github.com/belofte2025/belofte-sub001/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación de SupplierRepository (usable con pool o tx).
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un nuevo proveedor.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (id, company_id, supplier_name, contact, country, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.CompanyID, supplier.SupplierName, supplier.Contact, supplier.Country,
		supplier.CreatedAt, supplier.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	query := `
		SELECT id, company_id, supplier_name, contact, country, created_at, updated_at
		FROM suppliers WHERE id = $1`
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.CompanyID, &s.SupplierName, &s.Contact, &s.Country, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// GetByCompanyAndName obtiene un proveedor por empresa y nombre, sin distinguir mayúsculas.
func (r *SupplierRepo) GetByCompanyAndName(companyID, supplierName string) (*entity.Supplier, error) {
	query := `
		SELECT id, company_id, supplier_name, contact, country, created_at, updated_at
		FROM suppliers WHERE company_id = $1 AND LOWER(supplier_name) = LOWER($2)`
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(), query, companyID, supplierName).Scan(
		&s.ID, &s.CompanyID, &s.SupplierName, &s.Contact, &s.Country, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier by name: %w", err)
	}
	return &s, nil
}

// ListByCompany lista proveedores de la empresa con paginación.
func (r *SupplierRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Supplier, error) {
	query := `
		SELECT id, company_id, supplier_name, contact, country, created_at, updated_at
		FROM suppliers WHERE company_id = $1 ORDER BY supplier_name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.CompanyID, &s.SupplierName, &s.Contact, &s.Country,
			&s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// CreateItem persiste un artículo del proveedor.
func (r *SupplierRepo) CreateItem(item *entity.SupplierItem) error {
	query := `
		INSERT INTO supplier_items (id, supplier_id, item_name, price, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SupplierID, item.ItemName, item.Price, item.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier item: %w", err)
	}
	return nil
}

// GetItemByName obtiene un artículo del proveedor por nombre exacto.
func (r *SupplierRepo) GetItemByName(supplierID, itemName string) (*entity.SupplierItem, error) {
	query := `
		SELECT id, supplier_id, item_name, price, created_at
		FROM supplier_items WHERE supplier_id = $1 AND item_name = $2`
	var it entity.SupplierItem
	err := r.q.QueryRow(context.Background(), query, supplierID, itemName).Scan(
		&it.ID, &it.SupplierID, &it.ItemName, &it.Price, &it.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier item: %w", err)
	}
	return &it, nil
}

// ListItems lista los artículos de un proveedor.
func (r *SupplierRepo) ListItems(supplierID string) ([]*entity.SupplierItem, error) {
	query := `
		SELECT id, supplier_id, item_name, price, created_at
		FROM supplier_items WHERE supplier_id = $1 ORDER BY item_name`
	rows, err := r.q.Query(context.Background(), query, supplierID)
	if err != nil {
		return nil, fmt.Errorf("list supplier items: %w", err)
	}
	defer rows.Close()
	var list []*entity.SupplierItem
	for rows.Next() {
		var it entity.SupplierItem
		if err := rows.Scan(&it.ID, &it.SupplierID, &it.ItemName, &it.Price, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}
