// Package errors defines the error kinds surfaced by sheetcard.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies an Error.
type Kind string

const (
	// KindParse marks a malformed or unreadable workbook, a workbook without
	// sheets, or a sheet range that cannot be decoded.
	KindParse Kind = "PARSE_ERROR"
	// KindConfig marks an invalid caller setting such as a header row count
	// that leaves no data rows.
	KindConfig Kind = "CONFIG_ERROR"
	// KindSizeLimit marks a file, row or column ceiling being exceeded.
	KindSizeLimit Kind = "SIZE_LIMIT_ERROR"
)

// Sentinels for errors.Is checks. Any *Error of the same kind matches.
var (
	ErrParse     = &Error{Kind: KindParse, Message: "parse error"}
	ErrConfig    = &Error{Kind: KindConfig, Message: "config error"}
	ErrSizeLimit = &Error{Kind: KindSizeLimit, Message: "size limit exceeded"}
)

// Error is a classified sheetcard error.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Parse creates a KindParse error.
func Parse(format string, args ...any) *Error {
	return &Error{Kind: KindParse, Message: fmt.Sprintf(format, args...)}
}

// Config creates a KindConfig error.
func Config(format string, args ...any) *Error {
	return &Error{Kind: KindConfig, Message: fmt.Sprintf(format, args...)}
}

// SizeLimit creates a KindSizeLimit error.
func SizeLimit(format string, args ...any) *Error {
	return &Error{Kind: KindSizeLimit, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps err with a message under the given kind.
// An err that already is an *Error keeps its own kind.
func Wrap(kind Kind, err error, message string) error {
	if err == nil {
		return nil
	}
	var e *Error
	if stderrors.As(err, &e) {
		kind = e.Kind
	}
	return &Error{Kind: kind, Message: message, Cause: err}
}

// KindOf returns the kind of err, or "" if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}
