// Package impl contains the implementation of the application's business logic.
package impl

import (
	"reflect"
	"strings"

	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/errors"

	"github.com/go-playground/validator/v10"
)

// newValidator builds a validator instance that reports fields by their JSON
// names, so validation messages match what the client actually sent.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return strings.ToLower(fld.Name)
		}

		return name
	})

	return v
}

// collectInvalidFields validates the input struct and returns the names of
// every failing field, so a single response can report them all at once.
func collectInvalidFields(v *validator.Validate, input any) []string {
	err := v.Struct(input)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{"input"}
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}

	return fields
}

// validationError builds the aggregated ValidationFailed error for a list of
// missing or invalid fields.
func validationError(fields []string) error {
	return domainerrors.ErrValidationFailed.
		WithMessage("Missing or invalid fields: " + strings.Join(fields, ", "))
}
