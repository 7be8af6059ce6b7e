package http

import "github.com/go-playground/validator/v10"

// validate instancia única del validador de structs para los DTOs de entrada.
var validate = validator.New()

// validateStruct aplica las tags `validate` del DTO y devuelve el primer error.
func validateStruct(in any) error {
	return validate.Struct(in)
}
