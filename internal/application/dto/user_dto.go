package dto

// RegisterRequest entrada para registro (password en texto, se hashea en use case).
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// LoginRequest entrada para login. Identifier es el email de la cuenta.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// UpdateProfileRequest entrada para editar el perfil. Password en blanco
// significa conservar la contraseña actual.
type UpdateProfileRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password"`
}

// UserResponse salida de un usuario (nunca incluye el hash).
type UserResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	DealerID string `json:"dealer_id"`
}

// LoginResponse salida con token JWT y el usuario público.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
