package repository

import "github.com/belofte2025/belofte-sub001/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier y sus artículos.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	// GetByCompanyAndName resuelve un proveedor por nombre dentro del tenant,
	// sin distinguir mayúsculas. Devuelve (nil, nil) si no existe.
	GetByCompanyAndName(companyID, supplierName string) (*entity.Supplier, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Supplier, error)

	CreateItem(item *entity.SupplierItem) error
	// GetItemByName resuelve un artículo del proveedor por nombre exacto.
	// Devuelve (nil, nil) si no existe.
	GetItemByName(supplierID, itemName string) (*entity.SupplierItem, error)
	ListItems(supplierID string) ([]*entity.SupplierItem, error)
}
