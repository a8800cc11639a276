package account

import (
	"errors"
	"fmt"
)

// Erros específicos do contexto de contas
var (
	ErrAccountNameRequired = errors.New("account name is required")
	ErrAccountNotFound     = errors.New("account not found")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrDeleteForbidden     = errors.New("delete not allowed for this role")
	ErrExportForbidden     = errors.New("export restricted to administrators")

	ErrFetchAccount = errors.New("error fetching account")
	ErrSaveAccount  = errors.New("error saving account")
)

type AccountError struct {
	Err   error
	Cause error
}

func (e *AccountError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *AccountError) Unwrap() error {
	return e.Err
}

func NewAccountError(err error, cause error) *AccountError {
	return &AccountError{
		Err:   err,
		Cause: cause,
	}
}
