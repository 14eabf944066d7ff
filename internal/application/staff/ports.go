package staff

import (
	"context"

	"github.com/tu-usuario/studio-pro/internal/domain/repository"
)

// TxRunner ejecuta el callback con repos atados a una misma transacción.
// Alta y baja de personal tocan users y employees: las dos escrituras deben
// confirmar o revertir juntas.
type TxRunner interface {
	RunStaff(ctx context.Context, fn func(
		userRepo repository.UserRepository,
		employeeRepo repository.EmployeeRepository,
	) error) error
}
