package entity

import "time"

// Customer representa un cliente de la empresa. El nombre es único dentro
// del tenant; las importaciones lo resuelven sin distinguir mayúsculas.
type Customer struct {
	ID           string
	CompanyID    string
	CustomerName string
	Phone        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
