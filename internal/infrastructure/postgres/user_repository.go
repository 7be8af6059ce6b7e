package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario. El constraint único (email, dealer_id)
// cierra la ventana del check-then-insert: 23505 se mapea al error de conflicto.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, dealer_id, name, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.DealerID, user.Name, user.Email, user.PasswordHash,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `
		SELECT id, dealer_id, name, email, password_hash, created_at, updated_at
		FROM users WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByEmailAndDealer obtiene un usuario por email dentro del dealer.
func (r *UserRepo) GetByEmailAndDealer(email, dealerID string) (*entity.User, error) {
	query := `
		SELECT id, dealer_id, name, email, password_hash, created_at, updated_at
		FROM users WHERE email = $1 AND dealer_id = $2`
	return r.scanOne(query, email, dealerID)
}

// GetByNameOrEmail busca por nombre O email dentro del dealer (pre-check de registro).
func (r *UserRepo) GetByNameOrEmail(name, email, dealerID string) (*entity.User, error) {
	query := `
		SELECT id, dealer_id, name, email, password_hash, created_at, updated_at
		FROM users WHERE (name = $1 OR email = $2) AND dealer_id = $3 LIMIT 1`
	return r.scanOne(query, name, email, dealerID)
}

// Update actualiza email y password_hash (perfil). El resto de campos no cambia.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET email = $2, password_hash = $3, updated_at = $4
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		user.ID, user.Email, user.PasswordHash, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepo) scanOne(query string, args ...any) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&u.ID, &u.DealerID, &u.Name, &u.Email, &u.PasswordHash,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}
