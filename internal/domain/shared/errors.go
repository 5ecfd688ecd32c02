package shared

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a domain failure. Handlers map kinds to HTTP
// statuses; callers branch on the kind instead of inspecting messages.
type ErrorKind string

const (
	KindValidation   ErrorKind = "VALIDATION"
	KindUnauthorized ErrorKind = "UNAUTHORIZED"
	KindForbidden    ErrorKind = "FORBIDDEN"
	KindNotFound     ErrorKind = "NOT_FOUND"
	KindConflict     ErrorKind = "CONFLICT"
	KindInvalidID    ErrorKind = "INVALID_ID"
	KindInvalidState ErrorKind = "INVALID_STATE"
	KindInternal     ErrorKind = "INTERNAL"
)

// DomainError is the error type domain and application code return.
type DomainError struct {
	Kind    ErrorKind
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(kind ErrorKind, message string) *DomainError {
	return &DomainError{Kind: kind, Message: message}
}

func NewDomainErrorf(kind ErrorKind, format string, args ...interface{}) *DomainError {
	return &DomainError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NewNotFoundError builds the canonical "<Resource> not found" message.
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{Kind: KindNotFound, Message: resource + " not found"}
}

func NewValidationError(message string) *DomainError {
	return &DomainError{Kind: KindValidation, Message: message}
}

func NewConflictError(message string) *DomainError {
	return &DomainError{Kind: KindConflict, Message: message}
}

func NewInvalidStateError(message string) *DomainError {
	return &DomainError{Kind: KindInvalidState, Message: message}
}

var (
	ErrUnauthorized  = &DomainError{Kind: KindUnauthorized, Message: "Unauthorized"}
	ErrForbidden     = &DomainError{Kind: KindForbidden, Message: "Forbidden"}
	ErrInvalidID     = &DomainError{Kind: KindInvalidID, Message: "Invalid ID format"}
	ErrAlreadyExists = &DomainError{Kind: KindConflict, Message: "Resource already exists"}
)

// KindOf extracts the kind from any error chain. Unclassified errors
// are internal.
func KindOf(err error) ErrorKind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
