package entity

import "errors"

var (
	ErrNotFound            = errors.New("registro não encontrado")
	ErrConflict            = errors.New("registro em conflito")
	ErrInvalidStage        = errors.New("invalid pipeline stage")
	ErrInvalidInstallments = errors.New("installments must be at least 1")
)

// FieldError descreve uma falha de validação em um campo de entrada.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	msg := "validation failed: "
	for i, e := range fe {
		if i > 0 {
			msg += ", "
		}
		msg += e.Field + " (" + e.Message + ")"
	}
	return msg
}
