package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/joaomarcosmb/cd-rental/util/apperr"
)

// Validator adapts go-playground/validator to echo and reports failures as
// validation errors keyed by the wire name of each field.
type Validator struct {
	v *validator.Validate
}

func New(v *validator.Validate) *Validator {
	v.RegisterTagNameFunc(wireName)
	return &Validator{v: v}
}

func wireName(f reflect.StructField) string {
	for _, tag := range []string{"query", "param", "json"} {
		if name, _, _ := strings.Cut(f.Tag.Get(tag), ","); name != "" && name != "-" {
			return name
		}
	}
	return f.Name
}

func (v *Validator) Validate(i interface{}) error {
	err := v.v.Struct(i)
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}
	fields := make([]apperr.FieldError, 0, len(ves))
	for _, fe := range ves {
		fields = append(fields, apperr.FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return apperr.Validation(fields...)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "uuid":
		return fmt.Sprintf("%s must be a valid UUID", fe.Field())
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}
