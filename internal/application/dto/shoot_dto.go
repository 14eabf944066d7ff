package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateShootRequest entrada para agendar una sesión. El estado inicial es PLANNED.
type CreateShootRequest struct {
	CustomerID    string          `json:"customer_id" validate:"required,uuid"`
	Title         string          `json:"title" validate:"required,min=1,max=200"`
	Type          string          `json:"type" validate:"omitempty,max=100"`
	StartDateTime time.Time       `json:"start_datetime" validate:"required"`
	EndDateTime   time.Time       `json:"end_datetime" validate:"required"`
	Location      string          `json:"location" validate:"omitempty,max=300"`
	Package       string          `json:"package" validate:"omitempty,max=100"`
	Extras        []string        `json:"extras"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	Deposit       decimal.Decimal `json:"deposit"`
}

// UpdateShootRequest entrada parcial para editar una sesión. El precio y el
// abono no se tocan por aquí: tienen operaciones propias con sus invariantes.
type UpdateShootRequest struct {
	CustomerID    *string    `json:"customer_id" validate:"omitempty,uuid"`
	Title         *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Type          *string    `json:"type" validate:"omitempty,max=100"`
	Status        *string    `json:"status"`
	StartDateTime *time.Time `json:"start_datetime"`
	EndDateTime   *time.Time `json:"end_datetime"`
	Location      *string    `json:"location" validate:"omitempty,max=300"`
	Package       *string    `json:"package" validate:"omitempty,max=100"`
	Extras        []string   `json:"extras"`
}

// RecordPaymentRequest entrada para registrar un abono sobre una sesión.
type RecordPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Note   string          `json:"note" validate:"omitempty,max=300"`
}

// RecordPaymentResponse nuevo acumulado tras el abono, para mostrar al cliente.
type RecordPaymentResponse struct {
	NewDeposit decimal.Decimal `json:"new_deposit"`
	Remaining  decimal.Decimal `json:"remaining"`
}

// UpdatePriceRequest entrada para ajustar el precio total de una sesión.
type UpdatePriceRequest struct {
	TotalPrice decimal.Decimal `json:"total_price"`
}

// ShootListRequest filtros del listado (búsqueda y rango calendario).
type ShootListRequest struct {
	Query string     `query:"q"`
	From  *time.Time `query:"from"`
	To    *time.Time `query:"to"`
}

// ShootResponse salida de una sesión con su cliente resuelto.
type ShootResponse struct {
	ID            string            `json:"id"`
	CustomerID    string            `json:"customer_id"`
	Customer      *CustomerResponse `json:"customer,omitempty"`
	Title         string            `json:"title"`
	Type          string            `json:"type,omitempty"`
	Status        string            `json:"status"`
	StartDateTime time.Time         `json:"start_datetime"`
	EndDateTime   time.Time         `json:"end_datetime"`
	Location      string            `json:"location,omitempty"`
	Package       string            `json:"package,omitempty"`
	Extras        []string          `json:"extras,omitempty"`
	TotalPrice    decimal.Decimal   `json:"total_price"`
	Deposit       decimal.Decimal   `json:"deposit"`
	Remaining     decimal.Decimal   `json:"remaining"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}
