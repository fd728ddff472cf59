package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Error is a schema violation carrying a map from field path to the
// human-readable messages for that field. Handlers hand it to the error
// middleware, which renders the 400 body.
type Error struct {
	Details map[string][]string
}

func (e *Error) Error() string { return "Validation failed" }

func init() {
	// Report fields by their json names so the details map matches the wire
	// payload rather than Go struct fields.
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

// Wrap converts a ShouldBindJSON failure into *Error. Errors that are not
// binding failures pass through unchanged.
func Wrap(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make(map[string][]string, len(verrs))
		for _, fe := range verrs {
			field := fieldPath(fe)
			details[field] = append(details[field], messageFor(fe))
		}
		return &Error{Details: details}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return &Error{Details: map[string][]string{
			field: {fmt.Sprintf("must be of type %s", typeErr.Type.String())},
		}}
	}

	// Malformed or empty JSON bodies.
	return &Error{Details: map[string][]string{
		"body": {"must be valid JSON"},
	}}
}

// fieldPath strips the root struct name from the validator namespace,
// keeping element indexes: "ChatRequest.userId" -> "userId",
// "OnboardingRequest.struggles[0]" -> "struggles[0]".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "uuid", "uuid4":
		return "must be a valid UUID"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s items", fe.Param())
		}
		if fe.Param() == "1" {
			return "must not be empty"
		}
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at most %s items", fe.Param())
		}
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
