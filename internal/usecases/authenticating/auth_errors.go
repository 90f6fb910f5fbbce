package authenticating

import (
	"errors"
	"fmt"

	"github.com/vfg2006/retail-sales-insights-api/pkg/apiErrors"
)

var (
	ErrInvalidToken          = errors.New("token inválido")
	ErrExpiredToken          = errors.New("token expirado")
	ErrInsufficientPrivilege = errors.New("privilégios insuficientes")
	ErrUnknownRole           = errors.New("perfil desconhecido")
	ErrMissingRequiredData   = errors.New("dados obrigatórios ausentes")
	ErrMissingSecret         = errors.New("segredo de assinatura não configurado")
)

// AuthError carrega o código de erro da API junto do erro base
type AuthError struct {
	Err     error
	Code    string
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

// IsAuthorizationError indica erros que devem virar 401/403 na API
func IsAuthorizationError(err error) bool {
	for _, target := range []error{ErrInsufficientPrivilege, ErrInvalidToken, ErrExpiredToken, ErrUnknownRole} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// ErrorCode devolve o código da API associado ao erro.
// Erros sem código conhecido são tratados como token inválido.
func ErrorCode(err error) string {
	var authErr *AuthError
	if errors.As(err, &authErr) && authErr.Code != "" {
		return authErr.Code
	}
	if errors.Is(err, ErrExpiredToken) {
		return apiErrors.ErrExpiredToken
	}
	return apiErrors.ErrInvalidToken
}
