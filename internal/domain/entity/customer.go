package entity

import "time"

// Customer representa un cliente del estudio (no confundir con User de rol CUSTOMER:
// el cliente comercial no necesita cuenta en el sistema).
type Customer struct {
	ID          string
	Name        string
	Phone       string
	Email       string
	SocialMedia string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
