package interacting

import (
	"errors"
	"fmt"
)

// Erros específicos do contexto de interações
var (
	ErrInvalidInteraction  = errors.New("interaction subject and account are required")
	ErrInteractionNotFound = errors.New("interaction not found")
	ErrDealNotFound        = errors.New("deal not found")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrDeleteForbidden     = errors.New("delete not allowed for this role")

	ErrFetchInteraction = errors.New("error fetching interaction")
	ErrSaveInteraction  = errors.New("error saving interaction")
)

type InteractionError struct {
	Err   error
	Cause error
}

func (e *InteractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *InteractionError) Unwrap() error {
	return e.Err
}

func NewInteractionError(err error, cause error) *InteractionError {
	return &InteractionError{
		Err:   err,
		Cause: cause,
	}
}
