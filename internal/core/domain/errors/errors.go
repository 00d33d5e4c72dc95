package errors

import "fmt"

type InvalidStateError struct {
	msg string
}

func NewInvalidStateError(msg string) *InvalidStateError {
	return &InvalidStateError{msg: msg}
}

func (e *InvalidStateError) Error() string {
	return e.msg
}

type NilArgumentError struct {
	argument string
}

func NewNilArgumentError(argument string) *NilArgumentError {
	return &NilArgumentError{argument: argument}
}

func (e *NilArgumentError) Error() string {
	return fmt.Sprintf("argument '%s' must not be nil", e.argument)
}

// NotFoundError reports that a requested record does not exist or is no
// longer usable. Action carries the remediation text shown to the caller.
type NotFoundError struct {
	Message string
	Action  string
}

func NewNotFoundError(message string, action string) *NotFoundError {
	return &NotFoundError{Message: message, Action: action}
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// ForbiddenError reports a failed capability check.
type ForbiddenError struct {
	Message string
	Action  string
}

func NewForbiddenError(message string, action string) *ForbiddenError {
	return &ForbiddenError{Message: message, Action: action}
}

func (e *ForbiddenError) Error() string {
	return e.Message
}
