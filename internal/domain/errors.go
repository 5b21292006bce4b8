package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas). Los handlers HTTP los traducen a status.
var (
	ErrValidation         = errors.New("validation error")
	ErrNotFound           = errors.New("resource not found")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrDuplicate          = errors.New("resource already exists")
	ErrUnauthenticated    = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrForbidden          = errors.New("access denied")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Error error de dominio con mensaje legible para el cliente.
// errors.Is(err, Kind) sigue funcionando sobre el sentinel.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

// Errorf construye un *Error del tipo indicado.
func Errorf(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Message devuelve el mensaje para el cliente: el de *Error si existe, si no el del sentinel.
func Message(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Msg
	}
	return err.Error()
}
