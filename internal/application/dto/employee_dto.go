package dto

import "time"

// CreateEmployeeRequest entrada para dar de alta personal: crea la cuenta User
// y la ficha Employee en una sola transacción. Si Password viene vacío se
// genera una contraseña temporal que se devuelve una única vez en la respuesta.
type CreateEmployeeRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty,max=30"`
	Position string `json:"position" validate:"required,min=1,max=100"`
	Role     string `json:"role" validate:"required,oneof=ADMIN EMPLOYEE"`
	Password string `json:"password" validate:"omitempty,min=8"`
}

// ChangeRoleRequest entrada para cambiar el rol de una cuenta de personal.
type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=ADMIN EMPLOYEE"`
}

// EmployeeInfo ficha laboral dentro de la respuesta de personal.
type EmployeeInfo struct {
	ID        string    `json:"id"`
	Position  string    `json:"position"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EmployeeResponse cuenta + ficha laboral (nil si la cuenta no tiene ficha).
type EmployeeResponse struct {
	User     UserResponse  `json:"user"`
	Employee *EmployeeInfo `json:"employee"`
}

// CreateEmployeeResponse alta de personal; TemporaryPassword solo si fue generada.
type CreateEmployeeResponse struct {
	User              UserResponse `json:"user"`
	Employee          EmployeeInfo `json:"employee"`
	TemporaryPassword string       `json:"temporary_password,omitempty"`
}
