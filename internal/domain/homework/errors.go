// internal/domain/homework/errors.go
package homework

import (
	"errors"
	"fmt"
)

// ErrorKind is the closed set of reasons a status check can fail.
type ErrorKind int

const (
	KindInternal          ErrorKind = iota // anything not produced by this package's taxonomy
	KindTransport                          // the HTTP call itself could not be completed
	KindHTTPStatusNotOK                    // endpoint answered with a non-200 code
	KindDecode                             // body is not valid JSON
	KindMalformedResponse                  // payload is not an object or misses required keys
	KindInvalidListType                    // `homeworks` is present but not a list
	KindEmptyResult                        // `homeworks` is an empty list
	KindMissingField                       // homework entry lacks `homework_name` or `status`
	KindUnknownStatus                      // status code is not in the verdict table
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindHTTPStatusNotOK:
		return "http_status_not_ok"
	case KindDecode:
		return "decode"
	case KindMalformedResponse:
		return "malformed_response"
	case KindInvalidListType:
		return "invalid_list_type"
	case KindEmptyResult:
		return "empty_result"
	case KindMissingField:
		return "missing_field"
	case KindUnknownStatus:
		return "unknown_status"
	default:
		return "internal"
	}
}

// Error is a classified failure of one status check.
type Error struct {
	Kind   ErrorKind
	Detail string
	Err    error // underlying cause, may be nil
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Detail, e.Err)
	}
	return e.Detail
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError builds a classified error with a formatted detail message.
func NewError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// WrapError classifies cause under kind.
func WrapError(kind ErrorKind, cause error, detail string) *Error {
	return &Error{Kind: kind, Detail: detail, Err: cause}
}

// KindOf reports the kind of err. Errors outside the taxonomy are KindInternal.
func KindOf(err error) ErrorKind {
	var hwErr *Error
	if errors.As(err, &hwErr) {
		return hwErr.Kind
	}
	return KindInternal
}
