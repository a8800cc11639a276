package contacting

import (
	"errors"
	"fmt"
)

// Erros específicos do contexto de contatos
var (
	ErrInvalidContact   = errors.New("contact first name, email and account are required")
	ErrContactNotFound  = errors.New("contact not found")
	ErrAccountNotFound  = errors.New("account not found")
	ErrDuplicateEmail   = errors.New("a contact with this email already exists")
	ErrPermissionDenied = errors.New("permission denied")
	ErrDeleteForbidden  = errors.New("delete not allowed for this role")
	ErrExportForbidden  = errors.New("export restricted to administrators")

	ErrFetchContact = errors.New("error fetching contact")
	ErrSaveContact  = errors.New("error saving contact")
)

type ContactError struct {
	Err   error
	Cause error
}

func (e *ContactError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *ContactError) Unwrap() error {
	return e.Err
}

func NewContactError(err error, cause error) *ContactError {
	return &ContactError{
		Err:   err,
		Cause: cause,
	}
}
