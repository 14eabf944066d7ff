package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/studio-pro/internal/domain/entity"
	"github.com/tu-usuario/studio-pro/internal/domain/repository"
)

var _ repository.ShootRepository = (*ShootRepo)(nil)

// ShootRepo implementación del puerto ShootRepository sobre PostgreSQL.
type ShootRepo struct {
	q Querier
}

// NewShootRepository construye el adaptador. Pasar pool o tx (Querier).
func NewShootRepository(q Querier) *ShootRepo {
	return &ShootRepo{q: q}
}

// customer_id es NULL cuando el cliente fue eliminado; en dominio eso es "".
const shootColumns = `s.id, COALESCE(s.customer_id::text, ''), s.title, s.type, s.status,
	s.start_datetime, s.end_datetime, s.location, s.package, s.extras,
	s.total_price, s.deposit, s.created_at, s.updated_at`

// Create persiste una sesión nueva.
func (r *ShootRepo) Create(shoot *entity.Shoot) error {
	query := `
		INSERT INTO shoots (id, customer_id, title, type, status, start_datetime, end_datetime,
			location, package, extras, total_price, deposit, created_at, updated_at)
		VALUES ($1, NULLIF($2, '')::uuid, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		shoot.ID, shoot.CustomerID, shoot.Title, shoot.Type, shoot.Status,
		shoot.StartDateTime, shoot.EndDateTime, shoot.Location, shoot.Package, shoot.Extras,
		shoot.TotalPrice, shoot.Deposit, shoot.CreatedAt, shoot.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert shoot: %w", err)
	}
	return nil
}

// GetByID obtiene una sesión por ID.
func (r *ShootRepo) GetByID(id string) (*entity.Shoot, error) {
	query := `SELECT ` + shootColumns + ` FROM shoots s WHERE s.id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get shoot")
}

// GetByIDForUpdate lee la sesión bloqueando la fila. Dentro de una transacción
// del TxRunner serializa los pagos concurrentes sobre la misma sesión.
func (r *ShootRepo) GetByIDForUpdate(id string) (*entity.Shoot, error) {
	query := `SELECT ` + shootColumns + ` FROM shoots s WHERE s.id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get shoot for update")
}

func (r *ShootRepo) scanOne(row pgx.Row, op string) (*entity.Shoot, error) {
	var s entity.Shoot
	err := row.Scan(
		&s.ID, &s.CustomerID, &s.Title, &s.Type, &s.Status,
		&s.StartDateTime, &s.EndDateTime, &s.Location, &s.Package, &s.Extras,
		&s.TotalPrice, &s.Deposit, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &s, nil
}

// GetWithCustomer obtiene la sesión con su cliente resuelto.
func (r *ShootRepo) GetWithCustomer(id string) (*repository.ShootWithCustomer, error) {
	query := `
		SELECT ` + shootColumns + `,
			c.id, c.name, c.phone, c.email, c.social_media, c.notes, c.created_at, c.updated_at
		FROM shoots s
		LEFT JOIN customers c ON c.id = s.customer_id
		WHERE s.id = $1`
	row := r.q.QueryRow(context.Background(), query, id)
	sc, err := scanShootWithCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shoot with customer: %w", err)
	}
	return sc, nil
}

// List devuelve las sesiones con cliente, filtradas y ordenadas por inicio ascendente
// (orden natural del calendario). Query busca en título, tipo y nombre del cliente.
func (r *ShootRepo) List(filter repository.ShootFilter) ([]*repository.ShootWithCustomer, error) {
	sql := `
		SELECT ` + shootColumns + `,
			c.id, c.name, c.phone, c.email, c.social_media, c.notes, c.created_at, c.updated_at
		FROM shoots s
		LEFT JOIN customers c ON c.id = s.customer_id`
	var (
		conds []string
		args  []any
	)
	if filter.Query != "" {
		args = append(args, "%"+escapeLike(filter.Query)+"%")
		conds = append(conds, fmt.Sprintf(`(s.title ILIKE $%d OR s.type ILIKE $%d OR c.name ILIKE $%d)`, len(args), len(args), len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		conds = append(conds, fmt.Sprintf(`s.start_datetime >= $%d`, len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conds = append(conds, fmt.Sprintf(`s.start_datetime <= $%d`, len(args)))
	}
	for i, c := range conds {
		if i == 0 {
			sql += ` WHERE ` + c
		} else {
			sql += ` AND ` + c
		}
	}
	sql += ` ORDER BY s.start_datetime ASC`

	rows, err := r.q.Query(context.Background(), sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list shoots: %w", err)
	}
	defer rows.Close()
	var list []*repository.ShootWithCustomer
	for rows.Next() {
		sc, err := scanShootWithCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shoot: %w", err)
		}
		list = append(list, sc)
	}
	return list, rows.Err()
}

// Update actualiza los datos de agenda de la sesión. El precio y el abono tienen
// sus propias operaciones (UpdatePrice, UpdateDeposit) con bloqueo de fila.
func (r *ShootRepo) Update(shoot *entity.Shoot) error {
	query := `
		UPDATE shoots SET customer_id = NULLIF($2, '')::uuid, title = $3, type = $4, status = $5,
			start_datetime = $6, end_datetime = $7, location = $8, package = $9, extras = $10,
			updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		shoot.ID, shoot.CustomerID, shoot.Title, shoot.Type, shoot.Status,
		shoot.StartDateTime, shoot.EndDateTime, shoot.Location, shoot.Package, shoot.Extras,
		shoot.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update shoot: %w", err)
	}
	return nil
}

// UpdateDeposit fija el acumulado recaudado de la sesión.
func (r *ShootRepo) UpdateDeposit(id string, deposit decimal.Decimal, updatedAt time.Time) error {
	query := `UPDATE shoots SET deposit = $2, updated_at = $3 WHERE id = $1`
	if _, err := r.q.Exec(context.Background(), query, id, deposit, updatedAt); err != nil {
		return fmt.Errorf("update shoot deposit: %w", err)
	}
	return nil
}

// UpdatePrice fija el precio total de la sesión.
func (r *ShootRepo) UpdatePrice(id string, totalPrice decimal.Decimal, updatedAt time.Time) error {
	query := `UPDATE shoots SET total_price = $2, updated_at = $3 WHERE id = $1`
	if _, err := r.q.Exec(context.Background(), query, id, totalPrice, updatedAt); err != nil {
		return fmt.Errorf("update shoot price: %w", err)
	}
	return nil
}

// Delete elimina una sesión por ID.
func (r *ShootRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM shoots WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete shoot: %w", err)
	}
	return nil
}

// scanShootWithCustomer escanea la fila sesión + cliente del LEFT JOIN.
func scanShootWithCustomer(row pgx.Row) (*repository.ShootWithCustomer, error) {
	var (
		sc        repository.ShootWithCustomer
		cID       *string
		cName     *string
		cPhone    *string
		cEmail    *string
		cSocial   *string
		cNotes    *string
		cCreated  *time.Time
		cUpdated  *time.Time
	)
	s := &sc.Shoot
	err := row.Scan(
		&s.ID, &s.CustomerID, &s.Title, &s.Type, &s.Status,
		&s.StartDateTime, &s.EndDateTime, &s.Location, &s.Package, &s.Extras,
		&s.TotalPrice, &s.Deposit, &s.CreatedAt, &s.UpdatedAt,
		&cID, &cName, &cPhone, &cEmail, &cSocial, &cNotes, &cCreated, &cUpdated,
	)
	if err != nil {
		return nil, err
	}
	if cID != nil {
		sc.Customer = &entity.Customer{
			ID:          *cID,
			Name:        *cName,
			Phone:       *cPhone,
			Email:       *cEmail,
			SocialMedia: *cSocial,
			Notes:       *cNotes,
			CreatedAt:   *cCreated,
			UpdatedAt:   *cUpdated,
		}
	}
	return &sc, nil
}
