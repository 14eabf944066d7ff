// Package finance contiene la aritmética pura del libro contable.
// Las cifras derivadas (balance, saldo pendiente) son función exclusiva de las
// sumas de entrada: recomputarlas con los mismos insumos da siempre el mismo
// resultado, sin deriva de redondeo (decimal, no float).
package finance

import "github.com/shopspring/decimal"

// Stats es el agregado financiero de la vista de finanzas.
type Stats struct {
	TotalIncome           decimal.Decimal
	TotalExpense          decimal.Decimal
	Balance               decimal.Decimal // TotalIncome - TotalExpense
	TotalProjectedRevenue decimal.Decimal // suma de TotalPrice de todas las sesiones
	TotalRemainingBalance decimal.Decimal // TotalProjectedRevenue - TotalIncome
}

// Compute deriva las cifras del agregado a partir de las tres sumas base.
// Con sumas en cero devuelve el agregado todo-cero (colecciones vacías).
func Compute(totalIncome, totalExpense, projectedRevenue decimal.Decimal) Stats {
	return Stats{
		TotalIncome:           totalIncome,
		TotalExpense:          totalExpense,
		Balance:               totalIncome.Sub(totalExpense),
		TotalProjectedRevenue: projectedRevenue,
		TotalRemainingBalance: projectedRevenue.Sub(totalIncome),
	}
}
