// Package validator converts request binding failures into the field-scoped
// message maps the API returns.
package validator

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	// key validation errors by json tag rather than the Go field name
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// BindingErrors maps a gin binding failure onto per-field messages. Anything
// that is not a field validation failure (malformed JSON, wrong value type)
// lands under non_field_errors.
func BindingErrors(err error) map[string][]string {
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		out := make(map[string][]string, len(vErrs))
		for _, fe := range vErrs {
			out[fe.Field()] = append(out[fe.Field()], message(fe))
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return map[string][]string{typeErr.Field: {"This value is invalid."}}
	}

	return map[string][]string{"non_field_errors": {"Invalid request body."}}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	default:
		return "This value is invalid."
	}
}
