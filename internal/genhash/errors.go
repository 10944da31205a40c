package genhash

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrEmptyPassword is reported when the user submits an empty secret.
	ErrEmptyPassword = errors.New("password must not be empty")

	// ErrInvalidEncoding is reported when the secret is not valid UTF-8.
	ErrInvalidEncoding = errors.New("password is not valid UTF-8")
)

// Operations that can fail while producing a hash.
const (
	OpRead   = "read"
	OpEncode = "encode"
	OpHash   = "hash"
	OpWrite  = "write"
)

// Exit codes returned by the genhash command.
const (
	ExitOK          = 0
	ExitOperation   = 1
	ExitValidation  = 2
	ExitInterrupted = 130
)

// ValidationError means the user's input was rejected before hashing.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// OperationError wraps a failure while reading, encoding, hashing or printing.
type OperationError struct {
	Op  string
	Err error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// ExitCode maps the result of Run to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return ExitValidation
	}

	if errors.Is(err, context.Canceled) {
		return ExitInterrupted
	}

	return ExitOperation
}
