package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de una sesión fotográfica.
const (
	ShootStatusDraft            = "DRAFT"
	ShootStatusPlanned          = "PLANNED"
	ShootStatusCompleted        = "COMPLETED"
	ShootStatusCancelled        = "CANCELLED"
	ShootStatusSelectionPending = "SELECTION_PENDING"
	ShootStatusEditing          = "EDITING"
	ShootStatusPrinting         = "PRINTING"
	ShootStatusDelivered        = "DELIVERED"
	ShootStatusClosed           = "CLOSED"
)

// ValidShootStatus indica si el estado pertenece al enum cerrado.
func ValidShootStatus(status string) bool {
	switch status {
	case ShootStatusDraft, ShootStatusPlanned, ShootStatusCompleted, ShootStatusCancelled,
		ShootStatusSelectionPending, ShootStatusEditing, ShootStatusPrinting,
		ShootStatusDelivered, ShootStatusClosed:
		return true
	}
	return false
}

// Shoot representa una sesión fotográfica agendada para un cliente.
// Invariante: Deposit <= TotalPrice (se valida en los casos de uso de pago y precio).
type Shoot struct {
	ID            string
	CustomerID    string
	Title         string
	Type          string
	Status        string
	StartDateTime time.Time
	EndDateTime   time.Time
	Location      string
	Package       string
	Extras        []string
	TotalPrice    decimal.Decimal
	Deposit       decimal.Decimal // acumulado ya recaudado contra TotalPrice
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Remaining devuelve el saldo pendiente de la sesión.
func (s *Shoot) Remaining() decimal.Decimal {
	return s.TotalPrice.Sub(s.Deposit)
}
