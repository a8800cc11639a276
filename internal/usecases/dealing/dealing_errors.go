package dealing

import (
	"errors"
	"fmt"
)

// Erros específicos do contexto de deals
var (
	ErrInvalidDeal      = errors.New("deal name and account are required")
	ErrDealNotFound     = errors.New("deal not found")
	ErrInvalidLineItem  = errors.New("line item quantity must be positive")
	ErrLineItemNotFound = errors.New("line item not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrDeleteForbidden  = errors.New("delete not allowed for this role")
	ErrExportForbidden  = errors.New("export restricted to administrators")

	ErrFetchDeal     = errors.New("error fetching deal")
	ErrSaveDeal      = errors.New("error saving deal")
	ErrFetchLineItem = errors.New("error fetching line item")
	ErrSaveLineItem  = errors.New("error saving line item")
	ErrFetchProduct  = errors.New("error fetching product")
)

type DealError struct {
	Err   error
	Cause error
}

func (e *DealError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *DealError) Unwrap() error {
	return e.Err
}

func NewDealError(err error, cause error) *DealError {
	return &DealError{
		Err:   err,
		Cause: cause,
	}
}
