package authenticating

import (
	"errors"

	"github.com/vfg2006/kpi-dashboard-api/pkg/apiErrors"
)

var (
	ErrInvalidToken          = errors.New("token inválido")
	ErrExpiredToken          = errors.New("token expirado")
	ErrInsufficientPrivilege = errors.New("privilégios insuficientes")
	ErrMissingSecret         = errors.New("segredo de assinatura não configurado")
)

// AuthError liga o motivo da recusa ao código devolvido pela API.
// Cause guarda o erro da biblioteca de JWT, quando houver.
type AuthError struct {
	Err   error
	Code  string
	Cause error
}

func (e *AuthError) Error() string {
	if e.Cause != nil {
		return e.Err.Error() + ": " + e.Cause.Error()
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

func invalidToken(cause error) *AuthError {
	return &AuthError{Err: ErrInvalidToken, Code: apiErrors.ErrInvalidToken, Cause: cause}
}

func expiredToken(cause error) *AuthError {
	return &AuthError{Err: ErrExpiredToken, Code: apiErrors.ErrExpiredToken, Cause: cause}
}
