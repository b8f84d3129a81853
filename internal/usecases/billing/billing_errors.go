package billing

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de faturamento
var (
	// Erros de validação
	ErrServiceNotFound   = errors.New("service catalog item not found")
	ErrProjectNotFound   = errors.New("project not found")
	ErrLineNotFound      = errors.New("service line not found")
	ErrInvalidPeriod     = errors.New("invalid billing period")
	ErrServiceIDRequired = errors.New("service ID is required")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
)

// BillingError é um erro com contexto adicional para faturamento
type BillingError struct {
	Err     error
	Code    string
	Details string
}

func (e *BillingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *BillingError) Unwrap() error {
	return e.Err
}

func NewBillingError(err error, code string, details string) *BillingError {
	return &BillingError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
