package entity

import "time"

// Roles válidos para User. Los roles admin y vendedor tienen permiso de caja.
const (
	RoleAdmin       = "admin"
	RoleVendedor    = "vendedor"
	RoleVeterinario = "veterinario"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
