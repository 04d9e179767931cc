package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSupplierRequest alta manual de un proveedor.
type CreateSupplierRequest struct {
	SupplierName string `json:"supplierName"`
	Contact      string `json:"contact"`
	Country      string `json:"country"`
}

// SupplierResponse representación HTTP de un proveedor.
type SupplierResponse struct {
	ID           string    `json:"id"`
	CompanyID    string    `json:"companyId"`
	SupplierName string    `json:"supplierName"`
	Contact      string    `json:"contact"`
	Country      string    `json:"country"`
	CreatedAt    time.Time `json:"createdAt"`
}

// SupplierItemResponse artículo de un proveedor con su precio.
type SupplierItemResponse struct {
	ID         string          `json:"id"`
	SupplierID string          `json:"supplierId"`
	ItemName   string          `json:"itemName"`
	Price      decimal.Decimal `json:"price"`
	CreatedAt  time.Time       `json:"createdAt"`
}
