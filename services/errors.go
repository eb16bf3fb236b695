package services

import (
	"errors"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// ErrClienteNotFound is returned when a pedido references a missing cliente.
var ErrClienteNotFound = errors.New("cliente not found")

// ValidationError reports a request the service refuses to persist.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return e.Err.Error() }

func (e *ValidationError) Unwrap() error { return e.Err }

func newValidationError(errs ...error) error {
	var merr *multierror.Error
	for _, err := range errs {
		merr = multierror.Append(merr, err)
	}
	return toValidationError(merr)
}

// toValidationError returns nil when merr holds no errors.
func toValidationError(merr *multierror.Error) error {
	if merr.ErrorOrNil() == nil {
		return nil
	}
	merr.ErrorFormat = func(errs []error) string {
		msgs := make([]string, len(errs))
		for i, err := range errs {
			msgs[i] = err.Error()
		}
		return strings.Join(msgs, "; ")
	}
	return &ValidationError{Err: merr}
}
