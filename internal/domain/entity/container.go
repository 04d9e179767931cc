package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Container representa un contenedor de mercancía recibido por la empresa.
// Su CRUD vive fuera de este núcleo; aquí solo participa en la limpieza
// masiva en orden de dependencia.
type Container struct {
	ID          string
	CompanyID   string
	ContainerNo string
	ArrivalDate time.Time
	Year        int
	CreatedAt   time.Time
}

// ContainerItem es una línea de inventario dentro de un contenedor.
type ContainerItem struct {
	ID          string
	ContainerID string
	ItemName    string
	Quantity    int
	UnitPrice   decimal.Decimal
	CreatedAt   time.Time
}
