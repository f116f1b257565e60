package authenticating

import (
	"errors"
	"fmt"

	"github.com/vfg2006/dataops-local/pkg/apiErrors"
)

var (
	ErrInvalidCredentials  = errors.New("credenciais inválidas")
	ErrLoginDisabled       = errors.New("login desativado")
	ErrInvalidToken        = errors.New("token inválido")
	ErrExpiredToken        = errors.New("token expirado")
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrWeakPassword        = errors.New("senha fraca")
)

// AuthError leva junto o código de erro da API que o handler deve devolver
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

var sentinelCodes = []struct {
	err  error
	code string
}{
	{ErrExpiredToken, apiErrors.ErrExpiredToken},
	{ErrInvalidToken, apiErrors.ErrInvalidToken},
	{ErrInvalidCredentials, apiErrors.ErrInvalidCredentials},
	{ErrLoginDisabled, apiErrors.ErrUserDisabled},
	{ErrMissingRequiredData, apiErrors.ErrMissingRequiredData},
	{ErrWeakPassword, apiErrors.ErrInvalidFormat},
}

// APICode devolve o código da API para um erro de autenticação. O código de um
// AuthError tem precedência; erros desconhecidos viram SRV_001.
func APICode(err error) string {
	var authErr *AuthError
	if errors.As(err, &authErr) && authErr.Code != "" {
		return authErr.Code
	}
	for _, s := range sentinelCodes {
		if errors.Is(err, s.err) {
			return s.code
		}
	}
	return apiErrors.ErrInternalServer
}
