package scheduling

import (
	"context"

	"github.com/tu-usuario/studio-pro/internal/domain/repository"
)

// TxRunner ejecuta el callback con repos atados a una misma transacción.
// Registrar un abono escribe la sesión y el libro: o confirman juntas o
// ninguna; la lectura con bloqueo dentro de la transacción elimina el
// lost update entre abonos concurrentes sobre la misma sesión.
type TxRunner interface {
	RunShoot(ctx context.Context, fn func(
		shootRepo repository.ShootRepository,
		txnRepo repository.TransactionRepository,
	) error) error
}

// viewCache contrato mínimo para invalidar vistas cacheadas tras una mutación.
type viewCache interface {
	DeleteByPrefix(ctx context.Context, prefix string)
}
