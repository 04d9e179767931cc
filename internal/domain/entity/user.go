package entity

import "time"

// User representa un usuario del sistema (pertenece a una empresa).
// Preservado por la limpieza masiva junto con Company.
type User struct {
	ID        string
	CompanyID string
	Email     string
	Password  string // hash bcrypt, nunca en claro
	UserName  string
	Role      string // "admin" | "user"
	CreatedAt time.Time
	UpdatedAt time.Time
}
