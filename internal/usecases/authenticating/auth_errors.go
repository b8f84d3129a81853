package authenticating

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrUserDisabled       = errors.New("usuário desativado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrUserLocked         = errors.New("usuário bloqueado temporariamente")
	ErrUserAlreadyExists  = errors.New("usuário já existe")
	ErrPasswordExpired    = errors.New("senha expirada")

	ErrInvalidToken          = errors.New("token inválido")
	ErrExpiredToken          = errors.New("token expirado")
	ErrInsufficientPrivilege = errors.New("privilégios insuficientes")
	ErrNoAdminPrivileges     = errors.New("apenas administradores podem realizar esta ação")

	ErrInvalidRequest      = errors.New("requisição inválida")
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrInvalidFormat       = errors.New("formato de dados inválido")

	ErrWeakPassword     = errors.New("senha fraca")
	ErrPasswordMismatch = errors.New("senhas não conferem")
	ErrSamePassword     = errors.New("nova senha deve ser diferente da atual")

	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// AuthError carrega o erro base junto do código de API e do usuário envolvido
type AuthError struct {
	Err     error
	Code    string
	UserID  int
	Details string
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// NewUserAuthError é a variante de NewAuthError que registra o usuário alvo
func NewUserAuthError(baseErr error, code string, userID int, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		UserID:  userID,
		Details: details,
	}
}

// IsCredentialsError indica se o erro impede o login por estado da conta ou senha
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrUserDisabled) ||
		errors.Is(err, ErrUserLocked) ||
		errors.Is(err, ErrPasswordExpired)
}

// IsAuthorizationError indica se o erro é de autorização ou de token
func IsAuthorizationError(err error) bool {
	return errors.Is(err, ErrInsufficientPrivilege) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken) ||
		errors.Is(err, ErrNoAdminPrivileges)
}
