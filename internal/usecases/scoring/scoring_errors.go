package scoring

import (
	"errors"
	"fmt"
)

// Erros específicos do contexto de scoring
var (
	ErrDealNotFound      = errors.New("deal not found")
	ErrFetchDeal         = errors.New("error fetching deal")
	ErrFetchInteractions = errors.New("error fetching interactions")
	ErrSumValue          = errors.New("error summing line item value")
	ErrApplyScore        = errors.New("error applying score")
)

type ScoringError struct {
	Err   error
	Cause error
}

func (e *ScoringError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *ScoringError) Unwrap() error {
	return e.Err
}

func NewScoringError(err error, cause error) *ScoringError {
	return &ScoringError{
		Err:   err,
		Cause: cause,
	}
}
