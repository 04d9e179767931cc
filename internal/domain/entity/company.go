package entity

import "time"

// Company representa una organización/tenant del sistema. Todo registro de
// negocio pertenece (directa o transitivamente) a exactamente una empresa.
// Las operaciones de limpieza masiva nunca tocan esta tabla.
type Company struct {
	ID          string
	CompanyName string
	Address     string
	Phone       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
