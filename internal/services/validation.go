package services

import (
	stderrors "errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// newValidator builds a validator that reports fields by their json names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validationDetail flattens validator errors into the human-readable detail
// string returned with 400 responses.
func validationDetail(err error) string {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fieldMessage(fe))
	}
	return strings.Join(parts, " ")
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required."
	case "max":
		return field + " may not exceed " + fe.Param() + " characters."
	case "min":
		return field + " is too short."
	case "email":
		return "Enter a valid email address."
	case "gte", "lte":
		if field == "latitude" {
			return "Latitude must be between -90 and 90."
		}
		return "Longitude must be between -180 and 180."
	}
	return field + " is invalid."
}
