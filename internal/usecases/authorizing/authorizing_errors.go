package authorizing

import (
	"errors"
	"fmt"
)

// Erros específicos do contexto de autorização
var (
	ErrResolveTeam     = errors.New("error resolving manager team")
	ErrResolveAccounts = errors.New("error resolving visible accounts")
)

// AuthorizationError embrulha o erro base com a causa original
type AuthorizationError struct {
	Err   error
	Cause error
}

func (e *AuthorizationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *AuthorizationError) Unwrap() error {
	return e.Err
}

func NewAuthorizationError(err error, cause error) *AuthorizationError {
	return &AuthorizationError{
		Err:   err,
		Cause: cause,
	}
}
