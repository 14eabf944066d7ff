package entity

import "time"

// Roles válidos para User. Enum cerrado: cualquier otro valor se rechaza en validación.
const (
	RoleAdmin    = "ADMIN"
	RoleEmployee = "EMPLOYEE"
	RoleCustomer = "CUSTOMER"
)

// ValidRole indica si el rol pertenece al enum cerrado.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleEmployee, RoleCustomer:
		return true
	}
	return false
}

// User representa una cuenta del sistema. El email es único (case-insensitive).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // ADMIN, EMPLOYEE, CUSTOMER
	Phone        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
