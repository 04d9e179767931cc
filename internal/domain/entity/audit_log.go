package entity

import "time"

// AuditLog registra acciones de usuarios. Se elimina primero en la limpieza
// masiva (depende de User, que sí se preserva).
type AuditLog struct {
	ID        string
	UserID    string
	Action    string
	Detail    string
	CreatedAt time.Time
}
