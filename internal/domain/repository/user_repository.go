package repository

import "github.com/tu-usuario/studio-pro/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	// GetByEmail compara case-insensitive (el email es único en minúsculas).
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	UpdateRole(id, role string) error
	UpdatePasswordHash(id, passwordHash string) error
	ListByRoles(roles []string) ([]*entity.User, error)
	Delete(id string) error
}
