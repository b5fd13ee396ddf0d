package cli

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-immunization/command"
)

// classify maps registry errors onto exit codes and envelope codes.
func classify(err error) *ExitError {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}

	var richErr *goerrors.Error
	hasRich := goerrors.As(err, &richErr)

	switch {
	case command.IsIndividualNotFound(err):
		name := ""
		if hasRich {
			name, _ = richErr.Metadata["name"].(string)
		}
		return WrapExitError(ExitFailure, ErrCodeNotFound, fmt.Sprintf("%s is not in the registry.", name), err)
	case command.IsValidation(err):
		reason := err.Error()
		if hasRich {
			if r, ok := richErr.Metadata["reason"].(string); ok && r != "" {
				reason = r
			}
		}
		return WrapExitError(ExitCommandError, ErrCodeValidation, reason, err)
	default:
		return WrapExitError(ExitCommandError, ErrCodeGeneric, err.Error(), nil)
	}
}
