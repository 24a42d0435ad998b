package httperr

import (
	"github.com/cockroachdb/errors"
)

// Kind classifies a BusinessError so the HTTP layer can pick a status code.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindForbidden
	KindClosed
	KindUnavailable
	KindConflict
	KindInvalidState
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindForbidden:
		return "forbidden"
	case KindClosed:
		return "closed"
	case KindUnavailable:
		return "unavailable"
	case KindConflict:
		return "conflict"
	case KindInvalidState:
		return "invalid_state"
	default:
		return "internal"
	}
}

type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
	Fields  map[string]string

	cause error
}

func (e BusinessError) Error() string {
	if e.cause != nil {
		return e.Code + ": " + e.cause.Error()
	}
	return e.Code
}

func (e BusinessError) Unwrap() error {
	return e.cause
}

func Validation(code, message string, fields map[string]string) error {
	return BusinessError{Kind: KindValidation, Code: code, Message: message, Fields: fields}
}

func NotFound(code, message string) error {
	return BusinessError{Kind: KindNotFound, Code: code, Message: message}
}

func Forbidden(code, message string) error {
	return BusinessError{Kind: KindForbidden, Code: code, Message: message}
}

func Closed(code, message string) error {
	return BusinessError{Kind: KindClosed, Code: code, Message: message}
}

func Unavailable(code, message string) error {
	return BusinessError{Kind: KindUnavailable, Code: code, Message: message}
}

func Conflict(code, message string) error {
	return BusinessError{Kind: KindConflict, Code: code, Message: message}
}

func InvalidState(code, message string) error {
	return BusinessError{Kind: KindInvalidState, Code: code, Message: message}
}

// Internal wraps a store or network failure. The cause keeps its stack for logging.
func Internal(err error, msg string) error {
	return BusinessError{
		Kind:    KindInternal,
		Code:    "internal_error",
		Message: msg,
		cause:   errors.Wrap(err, msg),
	}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// KindOf reports the taxonomy kind of err. Anything that is not a
// BusinessError is internal.
func KindOf(err error) Kind {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind
	}
	return KindInternal
}
