// Package validation checks inbound payloads before they reach the services.
// Every failure is collected; nothing here touches persistence.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/khabaroff/sitecraft-api/src/apperrors"
)

// Normalizer is implemented by payloads that canonicalize themselves
// (trim strings, apply defaults) before validation.
type Normalizer interface {
	Normalize()
}

// CrossChecker is implemented by payloads with rules spanning several fields.
type CrossChecker interface {
	CrossCheck() []string
}

var phonePattern = regexp.MustCompile(`^[0-9]{10,15}$`)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON names ("sourcePage") instead of Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	// jsonvalue accepts a JSON string, object or array.
	_ = v.RegisterValidation("jsonvalue", func(fl validator.FieldLevel) bool {
		raw, ok := fl.Field().Interface().(json.RawMessage)
		if !ok {
			return false
		}
		trimmed := strings.TrimSpace(string(raw))
		if trimmed == "" || !json.Valid([]byte(trimmed)) {
			return false
		}
		switch trimmed[0] {
		case '"', '{', '[':
			return true
		}
		return false
	})

	return v
}

// Struct normalizes and validates payload. It returns nil or an
// *apperrors.Error of kind validation carrying every field message.
func Struct(payload any) error {
	if n, ok := payload.(Normalizer); ok {
		n.Normalize()
	}

	var details []string
	if err := validate.Struct(payload); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return apperrors.ErrInternal.Wrap(err)
		}
		for _, fe := range fieldErrs {
			details = append(details, message(fe))
		}
	}

	if cc, ok := payload.(CrossChecker); ok {
		details = append(details, cc.CrossCheck()...)
	}

	if len(details) > 0 {
		return apperrors.Validation(details...)
	}
	return nil
}

func message(fe validator.FieldError) string {
	field := humanize(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "Please provide a valid email address"
	case "phone":
		return "Phone number must be 10-15 digits"
	case "jsonvalue":
		return fmt.Sprintf("%s must be a string, object or array", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min", "gte":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		case reflect.Slice, reflect.Array:
			return fmt.Sprintf("%s must contain at least %s items", field, fe.Param())
		default:
			return fmt.Sprintf("%s must be at least %s", field, fe.Param())
		}
	case "max", "lte":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("%s cannot exceed %s characters", field, fe.Param())
		case reflect.Slice, reflect.Array:
			return fmt.Sprintf("%s cannot contain more than %s items", field, fe.Param())
		default:
			return fmt.Sprintf("%s cannot be greater than %s", field, fe.Param())
		}
	}
	return fmt.Sprintf("%s is invalid", field)
}

// humanize turns "sourcePage" into "Source page" and "features[2]" into "Feature 3".
func humanize(field string) string {
	if i := strings.IndexByte(field, '['); i > 0 && strings.HasSuffix(field, "]") {
		var idx int
		if _, err := fmt.Sscanf(field[i:], "[%d]", &idx); err == nil {
			return fmt.Sprintf("%s %d", humanize(strings.TrimSuffix(field[:i], "s")), idx+1)
		}
	}

	var b strings.Builder
	for i, r := range field {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsUpper(r):
			b.WriteRune(' ')
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
