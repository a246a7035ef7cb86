package prover

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrKind classifies the ways a Prove call can fail before ever reaching a
// proved/refuted/timeout verdict.
type ErrKind int

const (
	ErrUnknownLogic ErrKind = iota
	ErrMalformedProblem
	ErrResourceBoundExceeded
	ErrExternalSolverFailure
	ErrCoreContractViolation
)

func (k ErrKind) String() string {
	switch k {
	case ErrUnknownLogic:
		return "unknown logic"
	case ErrMalformedProblem:
		return "malformed problem"
	case ErrResourceBoundExceeded:
		return "resource bound exceeded"
	case ErrExternalSolverFailure:
		return "external solver failure"
	case ErrCoreContractViolation:
		return "core contract violation"
	}
	return "unknown error"
}

// ProverError wraps an ErrKind with context, preserving the original cause
// via github.com/pkg/errors so %+v printing still shows a stack trace from
// the point the error was first wrapped.
type ProverError struct {
	Kind ErrKind
	Msg  string
	Err  error
}

func (e *ProverError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *ProverError) Unwrap() error { return e.Err }

func newError(kind ErrKind, msg string) error {
	return errors.WithStack(&ProverError{Kind: kind, Msg: msg})
}

func wrapError(kind ErrKind, msg string, cause error) error {
	return errors.WithStack(&ProverError{Kind: kind, Msg: msg, Err: cause})
}
