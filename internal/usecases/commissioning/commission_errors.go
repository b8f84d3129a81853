package commissioning

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de comissão
var (
	// Erros de validação
	ErrClientIDRequired = errors.New("client ID is required")
	ErrPlanNotFound     = errors.New("commission plan not found")
	ErrNoActivePlan     = errors.New("client has no active commission plan")
	ErrNoSnapshot       = errors.New("no analytics snapshot for the period")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
)

// CommissionError é um erro com contexto adicional para comissões
type CommissionError struct {
	Err     error
	Code    string
	PlanID  string
	Details string
}

func (e *CommissionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CommissionError) Unwrap() error {
	return e.Err
}

func NewCommissionError(err error, code string, details string) *CommissionError {
	return &CommissionError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
