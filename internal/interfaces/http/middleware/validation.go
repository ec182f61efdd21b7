package middleware

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/storefront/backend/internal/domain/shared"
)

// SetupValidator makes validator report fields by their JSON names
func SetupValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
	}
	return name
}

// BindingError converts a request decoding or binding failure into a
// VALIDATION_FAILED domain error that names each offending field
func BindingError(err error) error {
	var violations shared.Violations

	var validationErrs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError

	switch {
	case errors.As(err, &validationErrs):
		for _, fe := range validationErrs {
			violations.Add(fe.Field(), validationMessage(fe))
		}
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "request_body"
		}
		violations.Add(field[strings.LastIndex(field, ".")+1:], typeMessage(typeErr.Type))
	case errors.As(err, &syntaxErr):
		violations.Add("request_body", "is not valid JSON")
	default:
		violations.Add("request_body", "is invalid")
	}
	return violations.Err()
}

func typeMessage(t reflect.Type) string {
	if t == nil {
		return "is invalid"
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "is not a number"
	}
	return "is invalid"
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "can't be blank"
	case "max":
		if fe.Kind() == reflect.String {
			return "is too long (maximum is " + fe.Param() + " characters)"
		}
		return "must be less than or equal to " + fe.Param()
	case "min":
		if fe.Kind() == reflect.String {
			return "is too short (minimum is " + fe.Param() + " characters)"
		}
		return "must be greater than or equal to " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "oneof":
		return "must be one of " + fe.Param()
	default:
		return "is invalid"
	}
}
