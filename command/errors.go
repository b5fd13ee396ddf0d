package command

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-immunization/pkg/types"
)

// TextCodeIndividualNotFound is the text code carried by not-found errors.
const TextCodeIndividualNotFound = "INDIVIDUAL_NOT_FOUND"

var (
	// ErrIndividualNotFound indicates the named individual is not in the registry.
	ErrIndividualNotFound = types.ErrIndividualNotFound
	// ErrNameRequired indicates the individual name was omitted.
	ErrNameRequired = types.ErrNameRequired
	// ErrDOBRequired indicates the date of birth was omitted.
	ErrDOBRequired = errors.New("go-immunization: date of birth required")
	// ErrVaccineRequired indicates the vaccine name was omitted.
	ErrVaccineRequired = errors.New("go-immunization: vaccine name required")
	// ErrDateRequired indicates the administration date was omitted.
	ErrDateRequired = errors.New("go-immunization: date administered required")
)

// IsIndividualNotFound reports whether err signals an unknown individual.
func IsIndividualNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrIndividualNotFound) {
		return true
	}
	var richErr *goerrors.Error
	if goerrors.As(err, &richErr) {
		return richErr.TextCode == TextCodeIndividualNotFound
	}
	return false
}

// IsValidation reports whether err is one of the input validation errors.
func IsValidation(err error) bool {
	if err == nil {
		return false
	}
	if isRequiredField(err) {
		return true
	}
	var richErr *goerrors.Error
	if goerrors.As(err, &richErr) {
		return richErr.Category == goerrors.CategoryValidation
	}
	return false
}

func isRequiredField(err error) bool {
	return errors.Is(err, ErrNameRequired) ||
		errors.Is(err, ErrDOBRequired) ||
		errors.Is(err, ErrVaccineRequired) ||
		errors.Is(err, ErrDateRequired)
}

// invalidInput lifts a Validate failure into a rich validation error so
// transports can report it without inspecting sentinels.
func invalidInput(err error, msgType string) error {
	if err == nil {
		return nil
	}
	var richErr *goerrors.Error
	if goerrors.As(err, &richErr) {
		return richErr
	}
	category := goerrors.CategoryInternal
	code := goerrors.CodeInternal
	if isRequiredField(err) {
		category = goerrors.CategoryValidation
		code = goerrors.CodeBadRequest
	}
	return goerrors.Wrap(err, category, err.Error()).
		WithCode(code).
		WithMetadata(map[string]any{"message": msgType, "reason": err.Error()})
}

// NewIndividualNotFound builds the reportable error for an unknown name.
func NewIndividualNotFound(name string) error {
	return goerrors.Wrap(ErrIndividualNotFound, goerrors.CategoryNotFound, fmt.Sprintf("%s is not in the registry.", name)).
		WithCode(goerrors.CodeNotFound).
		WithTextCode(TextCodeIndividualNotFound).
		WithMetadata(map[string]any{"name": name})
}
