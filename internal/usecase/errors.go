package usecase

import (
	"errors"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeInvalidStage = "INVALID_STAGE"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeDatabase     = "DATABASE_ERROR"
)

// DomainError é falha de regra de negócio: nada foi gravado.
type DomainError struct {
	Code    string
	Message string
	Fields  []entity.FieldError
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

// TechnicalError é falha de persistência ou infraestrutura.
type TechnicalError struct {
	Code    string
	Message string
	Err     error
}

func (e *TechnicalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *TechnicalError) Unwrap() error {
	return e.Err
}

func IsTechnicalError(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}

func validationError(err error) *DomainError {
	if fe, ok := entity.IsFieldErrors(err); ok {
		return &DomainError{Code: CodeValidation, Message: fe.Error(), Fields: fe}
	}
	return &DomainError{Code: CodeValidation, Message: err.Error()}
}

func notFound(what string) *DomainError {
	return &DomainError{Code: CodeNotFound, Message: what + " não encontrado"}
}

// persistenceError traduz o erro do repositório. Não há retry.
func persistenceError(what string, err error) error {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		return notFound(what)
	case errors.Is(err, entity.ErrConflict):
		return &DomainError{Code: CodeConflict, Message: what + " em conflito com registro existente"}
	default:
		return &TechnicalError{Code: CodeDatabase, Message: "falha ao gravar " + what, Err: err}
	}
}
