package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del libro contable.
const (
	TransactionIncome  = "INCOME"
	TransactionExpense = "EXPENSE"
)

// ValidTransactionType indica si el tipo pertenece al enum cerrado.
func ValidTransactionType(t string) bool {
	return t == TransactionIncome || t == TransactionExpense
}

// Referencias tipadas de un movimiento. Reemplaza la referencia polimórfica
// sin tag del sistema anterior: el kind decide contra qué tabla se resuelve.
const (
	RelatedKindEmployee = "EMPLOYEE" // pagos de nómina -> users
	RelatedKindShoot    = "SHOOT"    // ingresos por sesión -> shoots
)

// RelatedParty es la referencia etiquetada {kind, id} de un movimiento.
// El zero value significa "sin referencia".
type RelatedParty struct {
	Kind string // RelatedKindEmployee | RelatedKindShoot
	ID   string
}

// IsZero indica si no hay parte relacionada.
func (r RelatedParty) IsZero() bool { return r.Kind == "" && r.ID == "" }

// Valid indica si la referencia es consistente: o vacía, o kind conocido con id.
func (r RelatedParty) Valid() bool {
	if r.IsZero() {
		return true
	}
	return (r.Kind == RelatedKindEmployee || r.Kind == RelatedKindShoot) && r.ID != ""
}

// Transaction es una entrada del libro: un ingreso o un egreso.
type Transaction struct {
	ID          string
	Type        string // INCOME | EXPENSE
	Category    string
	Title       string
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	Related     RelatedParty
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
