package dataset

import (
	"fmt"

	goerrors "github.com/go-errors/errors"
)

type LoadErrorKind string

const (
	LoadErrMissingFile LoadErrorKind = "MISSING_FILE"
	LoadErrMalformed   LoadErrorKind = "MALFORMED"
	LoadErrSchema      LoadErrorKind = "SCHEMA"
)

// LoadError is returned when the dataset file is missing, unreadable, or does
// not match the expected schema. A LoadError means no table was produced.
type LoadError struct {
	Kind    LoadErrorKind
	Source  string
	Message string
	Err     error
	stack   []byte
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%s): %v", e.Kind, e.Message, e.Source, e.Err)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Source)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func (e *LoadError) StackTrace() []byte {
	return e.stack
}

func newLoadError(kind LoadErrorKind, source, message string, err error) *LoadError {
	var stack []byte
	if err != nil {
		if stackErr, ok := err.(*goerrors.Error); ok {
			stack = stackErr.Stack()
		} else {
			stack = goerrors.Wrap(err, 2).Stack()
		}
	} else {
		stack = goerrors.New(message).Stack()
	}

	return &LoadError{
		Kind:    kind,
		Source:  source,
		Message: message,
		Err:     err,
		stack:   stack,
	}
}
