package reconciling

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de conciliação
var (
	ErrClientNotFound    = errors.New("client not found")
	ErrInvalidYear       = errors.New("invalid report year")
	ErrInvalidMonth      = errors.New("invalid month")
	ErrDatabaseOperation = errors.New("database operation error")
)

// ReconciliationError é um erro com contexto adicional para conciliação
type ReconciliationError struct {
	Err     error
	Code    string
	Details string
}

func (e *ReconciliationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReconciliationError) Unwrap() error {
	return e.Err
}

func NewReconciliationError(err error, code string, details string) *ReconciliationError {
	return &ReconciliationError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
