package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached to wrapped command errors so hosts can route on them
// without string matching.
const (
	CodeInvalidMessage = "LANDING_COMMAND_INVALID"
	CodeCanceled       = "LANDING_COMMAND_CANCELED"
	CodeTimedOut       = "LANDING_COMMAND_TIMEOUT"
	CodeFailed         = "LANDING_COMMAND_FAILED"
)

func wrapValidationError(err error) error {
	return wrap(err, goerrors.CategoryValidation, "command message rejected", CodeInvalidMessage)
}

func wrapContextError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled):
		return wrap(err, goerrors.CategoryCommand, "command canceled", CodeCanceled)
	case errors.Is(err, context.DeadlineExceeded):
		return wrap(err, goerrors.CategoryCommand, "command timed out", CodeTimedOut)
	default:
		return wrap(err, goerrors.CategoryCommand, "command context error", CodeFailed)
	}
}

func wrapExecuteError(err error) error {
	return wrap(err, goerrors.CategoryCommand, "command failed", CodeFailed)
}

func wrap(err error, category goerrors.Category, msg, code string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, category, msg).WithTextCode(code)
}
