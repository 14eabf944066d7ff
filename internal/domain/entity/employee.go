package entity

import "time"

// Employee es la ficha laboral asociada uno-a-uno a un User de rol ADMIN o EMPLOYEE.
type Employee struct {
	ID        string
	UserID    string
	Position  string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
