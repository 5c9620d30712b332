package validators

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// StructValidator validates structs through their `validate` tags and
// reports fields under their JSON names.
type StructValidator struct {
	v *validator.Validate
}

// NewStructValidator constructs a StructValidator and returns it as the
// Validator interface.
func NewStructValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Use JSON tag as the field name in error output
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return &StructValidator{v: v}
}

// Validate validates obj, a struct or a pointer to one. fields restricts
// validation to the named struct fields. Field errors are returned as
// FieldErrors and also recorded on obj when it is an ErrorCollector.
func (s *StructValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	rv := reflect.ValueOf(obj)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	collector, collects := obj.(ErrorCollector)
	if collects {
		collector.ClearErrors()
	}

	var err error
	if len(fields) > 0 {
		err = s.v.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = s.v.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	out := make(FieldErrors)
	for _, e := range ve {
		out[e.Field()] = append(out[e.Field()], message(e))
	}
	if collects {
		collector.AddErrors(out)
	}
	return out
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("Must be at least %s characters", e.Param())
		}
		return fmt.Sprintf("Must be at least %s", e.Param())
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("Must be at most %s characters", e.Param())
		}
		return fmt.Sprintf("Must be at most %s", e.Param())
	case "oneof":
		return "Value must be one of: " + strings.ReplaceAll(e.Param(), " ", ", ")
	default:
		return e.Error()
	}
}
