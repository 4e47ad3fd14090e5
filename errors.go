package ratatui

import (
	"errors"
	"fmt"
)

// ErrorCode classifies binding-level failures.
type ErrorCode int

const (
	// CodeLibraryNotFound means the native library could not be located or
	// loaded. Fatal; surfaced at first use.
	CodeLibraryNotFound ErrorCode = iota + 1
	// CodeNativeConstruction means a native constructor reported failure.
	CodeNativeConstruction
	// CodeTerminalInit means raw-mode or alternate-screen setup failed.
	CodeTerminalInit
	// CodeInvalidArgument means local pre-validation rejected a call before
	// it crossed the native boundary.
	CodeInvalidArgument
	// CodeNativeCall means a non-constructor native call signaled failure.
	// The handle involved remains valid.
	CodeNativeCall
	// CodeResourceReleased means an operation used a handle after release.
	CodeResourceReleased
)

func (c ErrorCode) String() string {
	switch c {
	case CodeLibraryNotFound:
		return "library not found"
	case CodeNativeConstruction:
		return "native construction failed"
	case CodeTerminalInit:
		return "terminal init failed"
	case CodeInvalidArgument:
		return "invalid argument"
	case CodeNativeCall:
		return "native call failed"
	case CodeResourceReleased:
		return "resource released"
	default:
		return "unknown error"
	}
}

// Error is the binding's error type. Code discriminates, Op names the
// operation that failed, Err carries the cause when one exists.
type Error struct {
	Code ErrorCode
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ratatui: %s: %s: %v", e.Op, e.Code, e.Err)
	}
	return fmt.Sprintf("ratatui: %s: %s", e.Op, e.Code)
}

func (e *Error) Unwrap() error { return e.Err }

// CodeOf extracts the ErrorCode from err, or 0 when err is not a binding
// error.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return 0
}

func invalidArg(op, format string, args ...any) *Error {
	return &Error{Code: CodeInvalidArgument, Op: op, Err: fmt.Errorf(format, args...)}
}

func releasedErr(op string) *Error {
	return &Error{Code: CodeResourceReleased, Op: op}
}

func nativeErr(op string, err error) *Error {
	return &Error{Code: CodeNativeCall, Op: op, Err: err}
}
