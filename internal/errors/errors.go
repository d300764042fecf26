// internal/errors/errors.go
package appErrors

import "fmt"

// ValidationError reports missing or malformed request input. It is never
// retried; the message tells the caller what to fix.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidation(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// TemplateNotFoundError means no message template is stored for the
// requested service type.
type TemplateNotFoundError struct {
	ServiceType string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("no message template found for service type %q", e.ServiceType)
}

func NewTemplateNotFound(serviceType string) error {
	return &TemplateNotFoundError{ServiceType: serviceType}
}

// NoCustomersFoundError means none of the requested customer IDs resolved.
type NoCustomersFoundError struct{}

func (e *NoCustomersFoundError) Error() string {
	return "no customers found for the given ids"
}

func NewNoCustomersFound() error {
	return &NoCustomersFoundError{}
}

// StoreUnavailableError wraps a storage failure that made the operation
// impossible to record durably.
type StoreUnavailableError struct {
	Err error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("store unavailable: %v", e.Err)
}

func (e *StoreUnavailableError) Unwrap() error {
	return e.Err
}

func NewStoreUnavailable(err error) error {
	return &StoreUnavailableError{Err: err}
}
