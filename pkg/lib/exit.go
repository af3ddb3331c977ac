package lib

import (
	"errors"
	"fmt"
	"os"
)

// ExitError carries a process exit code other than 1 out of a command.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }
func (e *ExitError) Unwrap() error { return e.Err }

// WithCode wraps err so Exit uses code.
func WithCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &ExitError{Code: code, Err: err}
}

// Code returns the exit code for err: 0 for nil, the code of an ExitError,
// and 1 for anything else.
func Code(err error) int {
	if err == nil {
		return 0
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return 1
}

// Exit prints the error and exits the program with its code
func Exit(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(Code(err))
}
