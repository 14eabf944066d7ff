package dto

import "time"

// CreateCustomerRequest entrada para crear un cliente.
type CreateCustomerRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Phone       string `json:"phone" validate:"omitempty,max=30"`
	Email       string `json:"email" validate:"omitempty,email"`
	SocialMedia string `json:"social_media" validate:"omitempty,max=200"`
	Notes       string `json:"notes"`
}

// UpdateCustomerRequest entrada parcial para actualizar un cliente.
type UpdateCustomerRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Phone       *string `json:"phone" validate:"omitempty,max=30"`
	Email       *string `json:"email" validate:"omitempty,email"`
	SocialMedia *string `json:"social_media" validate:"omitempty,max=200"`
	Notes       *string `json:"notes"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	SocialMedia string    `json:"social_media,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
