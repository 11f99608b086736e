package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	apperrors "motorsport-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator that reports json (or form) field names
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, key := range []string{"json", "form", "uri"} {
			name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})
	return v
}

// ValidateStruct validates req and converts failures into a ValidationError
func ValidateStruct(v *validator.Validate, req interface{}) error {
	if err := v.Struct(req); err != nil {
		return TranslateValidation(err)
	}
	return nil
}

// TranslateValidation maps validator output onto apperrors.ValidationError
func TranslateValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperrors.NewValidationError("", err.Error())
	}

	fe := verrs[0]
	return apperrors.NewValidationError(fieldPath(fe.Namespace()), describe(fe))
}

// fieldPath drops the root type and embedded struct names from a validator namespace:
// "CreateRaceRequest.results[0].driver_id" becomes "results[0].driver_id"
func fieldPath(namespace string) string {
	segments := strings.Split(namespace, ".")
	if len(segments) > 1 {
		segments = segments[1:]
	}
	last := len(segments) - 1
	kept := segments[:0]
	for i, seg := range segments {
		if i < last && seg != "" && unicode.IsUpper(rune(seg[0])) {
			continue
		}
		kept = append(kept, seg)
	}
	return strings.Join(kept, ".")
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "uuid", "uuid4":
		return "must be a valid UUID"
	case "gtfield":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	}
	return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
}
