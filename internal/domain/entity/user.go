package entity

import "time"

// User representa una cuenta de cliente de la tienda (pertenece a un Dealer).
type User struct {
	ID           string
	DealerID     string
	Name         string
	Email        string
	PasswordHash string // hash bcrypt, nunca plano en dominio después de persistir
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
