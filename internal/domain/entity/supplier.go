package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier representa un proveedor de la empresa. El nombre es único dentro
// del tenant; las importaciones lo resuelven sin distinguir mayúsculas.
type Supplier struct {
	ID           string
	CompanyID    string
	SupplierName string
	Contact      string
	Country      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SupplierItem es un artículo ofrecido por un proveedor con su precio.
type SupplierItem struct {
	ID         string
	SupplierID string
	ItemName   string
	Price      decimal.Decimal
	CreatedAt  time.Time
}
