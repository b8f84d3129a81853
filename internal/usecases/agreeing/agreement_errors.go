package agreeing

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de acordos e repasses
var (
	ErrClientNotFound        = errors.New("client not found")
	ErrAgreementNotFound     = errors.New("agreement not found")
	ErrRateRequired          = errors.New("percent rate is required")
	ErrRevenueSourceRequired = errors.New("revenue source is required")
	ErrInvalidMonth          = errors.New("invalid month")
	ErrDatabaseOperation     = errors.New("database operation error")
)

// AgreementError é um erro com contexto adicional para acordos e repasses
type AgreementError struct {
	Err     error
	Code    string
	Details string
}

func (e *AgreementError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AgreementError) Unwrap() error {
	return e.Err
}

func NewAgreementError(err error, code string, details string) *AgreementError {
	return &AgreementError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
