package clienting

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de clientes
var (
	// Erros de validação
	ErrClientNameRequired = errors.New("client name is required")
	ErrInvalidPlanType    = errors.New("invalid plan type")
	ErrClientNotFound     = errors.New("client not found")

	// Erros de serviços externos
	ErrPoconvertoConnection = errors.New("error connecting to Poconverto")
	ErrIcountConnection     = errors.New("error connecting to iCount")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
	ErrGenerateID        = errors.New("error generating ID")
)

// ClientError é um erro com contexto adicional para clientes
type ClientError struct {
	Err      error
	Code     string
	ClientID string
	Details  string
}

func (e *ClientError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ClientError) Unwrap() error {
	return e.Err
}

func NewClientError(err error, code string, details string) *ClientError {
	return &ClientError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
