// Package staff gestiona el personal del estudio: cuentas y fichas laborales.
package staff

import (
	"context"
	"crypto/rand"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/studio-pro/internal/application/auth"
	"github.com/tu-usuario/studio-pro/internal/application/dto"
	"github.com/tu-usuario/studio-pro/internal/domain"
	"github.com/tu-usuario/studio-pro/internal/domain/entity"
	"github.com/tu-usuario/studio-pro/internal/domain/repository"
)

// viewCache contrato mínimo para invalidar vistas cacheadas tras una mutación.
type viewCache interface {
	DeleteByPrefix(ctx context.Context, prefix string)
}

// EmployeeUseCase casos de uso de personal.
type EmployeeUseCase struct {
	userRepo     repository.UserRepository
	employeeRepo repository.EmployeeRepository
	tx           TxRunner
	views        viewCache
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(userRepo repository.UserRepository, employeeRepo repository.EmployeeRepository, tx TxRunner, views viewCache) *EmployeeUseCase {
	return &EmployeeUseCase{userRepo: userRepo, employeeRepo: employeeRepo, tx: tx, views: views}
}

// Create da de alta personal: cuenta User + ficha Employee en una transacción.
// Si no viene password se genera uno temporal, devuelto una sola vez.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.CreateEmployeeRequest) (*dto.CreateEmployeeResponse, error) {
	if in.Name == "" || in.Email == "" || in.Position == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Role != entity.RoleAdmin && in.Role != entity.RoleEmployee {
		return nil, domain.ErrInvalidInput
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))

	existing, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	password := in.Password
	generated := false
	if password == "" {
		password, err = tempPassword(12)
		if err != nil {
			return nil, err
		}
		generated = true
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Role:         in.Role,
		Phone:        in.Phone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	employee := &entity.Employee{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Position:  in.Position,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = uc.tx.RunStaff(ctx, func(users repository.UserRepository, employees repository.EmployeeRepository) error {
		if err := users.Create(user); err != nil {
			return err
		}
		return employees.Create(employee)
	})
	if err != nil {
		return nil, err
	}
	uc.views.DeleteByPrefix(ctx, "stats:")

	out := &dto.CreateEmployeeResponse{
		User:     *auth.ToUserResponse(user),
		Employee: toEmployeeInfo(employee),
	}
	if generated {
		out.TemporaryPassword = password
	}
	return out, nil
}

// List devuelve las cuentas de rol ADMIN/EMPLOYEE con su ficha laboral.
func (uc *EmployeeUseCase) List() ([]dto.EmployeeResponse, error) {
	users, err := uc.userRepo.ListByRoles([]string{entity.RoleAdmin, entity.RoleEmployee})
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(users))
	for _, u := range users {
		emp, err := uc.employeeRepo.GetByUserID(u.ID)
		if err != nil {
			return nil, err
		}
		resp := dto.EmployeeResponse{User: *auth.ToUserResponse(u)}
		if emp != nil {
			info := toEmployeeInfo(emp)
			resp.Employee = &info
		}
		out = append(out, resp)
	}
	return out, nil
}

// ChangeRole cambia el rol de una cuenta de personal (ADMIN <-> EMPLOYEE).
func (uc *EmployeeUseCase) ChangeRole(ctx context.Context, userID, newRole string) error {
	if newRole != entity.RoleAdmin && newRole != entity.RoleEmployee {
		return domain.ErrInvalidInput
	}
	u, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrUserNotFound
	}
	if err := uc.userRepo.UpdateRole(userID, newRole); err != nil {
		return err
	}
	uc.views.DeleteByPrefix(ctx, "stats:")
	return nil
}

// Delete da de baja: elimina la cuenta y su ficha laboral en una transacción.
// La ausencia de ficha no es un error (cuentas registradas sin alta formal).
func (uc *EmployeeUseCase) Delete(ctx context.Context, userID string) error {
	u, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrUserNotFound
	}
	err = uc.tx.RunStaff(ctx, func(users repository.UserRepository, employees repository.EmployeeRepository) error {
		if _, err := employees.DeleteByUserID(userID); err != nil {
			return err
		}
		return users.Delete(userID)
	})
	if err != nil {
		return err
	}
	uc.views.DeleteByPrefix(ctx, "stats:")
	return nil
}

func toEmployeeInfo(e *entity.Employee) dto.EmployeeInfo {
	return dto.EmployeeInfo{
		ID:        e.ID,
		Position:  e.Position,
		IsActive:  e.IsActive,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

const tempPasswordAlphabet = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// tempPassword genera una contraseña aleatoria legible (sin 0/O ni 1/l).
func tempPassword(length int) (string, error) {
	b := make([]byte, length)
	max := big.NewInt(int64(len(tempPasswordAlphabet)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = tempPasswordAlphabet[n.Int64()]
	}
	return string(b), nil
}
