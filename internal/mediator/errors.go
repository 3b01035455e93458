package mediator

import (
	"fmt"

	dErrors "github.com/abstract-333/name-origin-api/pkg/domain-errors"
)

// HandlerNotRegisteredError is returned by Dispatch for unknown command types.
type HandlerNotRegisteredError struct {
	CommandType string
}

func (e *HandlerNotRegisteredError) Error() string {
	return fmt.Sprintf("no handler registered for command %s", e.CommandType)
}

func (e *HandlerNotRegisteredError) ErrorCode() dErrors.Code { return dErrors.CodeInternal }

// DuplicateHandlerError is returned by New when a command type is registered
// twice.
type DuplicateHandlerError struct {
	CommandType string
}

func (e *DuplicateHandlerError) Error() string {
	return fmt.Sprintf("handler for command %s already registered", e.CommandType)
}

// HandlerResultTypeError is returned by Send when the handler's result is not
// the requested type.
type HandlerResultTypeError struct {
	CommandType string
	Want        string
	Got         string
}

func (e *HandlerResultTypeError) Error() string {
	return fmt.Sprintf("handler for command %s returned %s, want %s", e.CommandType, e.Got, e.Want)
}

func (e *HandlerResultTypeError) ErrorCode() dErrors.Code { return dErrors.CodeInternal }
