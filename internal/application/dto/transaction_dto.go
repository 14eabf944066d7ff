package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RelatedRef referencia etiquetada de un movimiento: a un empleado (egresos de
// nómina) o a una sesión (ingresos). Reemplaza el related_id polimórfico.
type RelatedRef struct {
	Kind string `json:"kind" validate:"required,oneof=EMPLOYEE SHOOT"`
	ID   string `json:"id" validate:"required,uuid"`
}

// CreateTransactionRequest entrada para asentar un movimiento en el libro.
// Date vacío se interpreta como ahora.
type CreateTransactionRequest struct {
	Type        string          `json:"type" validate:"required,oneof=INCOME EXPENSE"`
	Category    string          `json:"category" validate:"required,min=1,max=100"`
	Title       string          `json:"title" validate:"omitempty,max=200"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        *time.Time      `json:"date"`
	Related     *RelatedRef     `json:"related"`
}

// UpdateTransactionRequest entrada parcial para corregir un movimiento.
type UpdateTransactionRequest struct {
	Type        *string          `json:"type" validate:"omitempty,oneof=INCOME EXPENSE"`
	Category    *string          `json:"category" validate:"omitempty,min=1,max=100"`
	Title       *string          `json:"title" validate:"omitempty,max=200"`
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description"`
	Date        *time.Time       `json:"date"`
	Related     *RelatedRef      `json:"related"`
}

// TransactionResponse salida de un movimiento con la parte relacionada resuelta.
type TransactionResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Title       string          `json:"title,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	Date        time.Time       `json:"date"`
	Related     *RelatedRef     `json:"related,omitempty"`
	RelatedName string          `json:"related_name,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
