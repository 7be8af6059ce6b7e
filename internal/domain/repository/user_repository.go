package repository

import "github.com/jhoicas/storefront-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmailAndDealer(email, dealerID string) (*entity.User, error)
	// GetByNameOrEmail busca por nombre O email dentro del dealer (pre-check de registro).
	GetByNameOrEmail(name, email, dealerID string) (*entity.User, error)
	Update(user *entity.User) error
}
