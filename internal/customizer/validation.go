package customizer

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/alexisbeaulieu97/teeform/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator used for form data.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(sf reflect.StructField) string {
			name := strings.SplitN(sf.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return sf.Name
			}
			return name
		})

		_ = v.RegisterValidation("maxlines", func(fl validator.FieldLevel) bool {
			limit, err := strconv.Atoi(fl.Param())
			if err != nil {
				return false
			}
			return LineCount(fl.Field().String()) <= limit
		})

		validateInst = v
	})

	return validateInst
}

// FieldErrors collects per-field validation failures in display order.
type FieldErrors []*apperrors.ValidationError

func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for _, err := range fe {
		parts = append(parts, err.Error())
	}
	return strings.Join(parts, "; ")
}

// Unwrap exposes the individual validation errors.
func (fe FieldErrors) Unwrap() []error {
	errs := make([]error, len(fe))
	for i, err := range fe {
		errs[i] = err
	}
	return errs
}

// Has reports whether field has an error.
func (fe FieldErrors) Has(field Field) bool {
	return fe.For(field) != ""
}

// For returns the message for field, or "" when the field is valid.
func (fe FieldErrors) For(field Field) string {
	for _, err := range fe {
		if err.Field == string(field) {
			return err.Message
		}
	}
	return ""
}

func (fe FieldErrors) sorted() FieldErrors {
	order := make(map[string]int, len(Fields))
	for i, f := range Fields {
		order[string(f)] = i
	}
	out := append(FieldErrors(nil), fe...)
	sort.SliceStable(out, func(i, j int) bool {
		return order[out[i].Field] < order[out[j].Field]
	})
	return out
}

// Validate checks data against the field rules. It returns a FieldErrors
// value, or nil when every field is valid.
func Validate(data FormData) error {
	if errs := validate(data); len(errs) > 0 {
		return errs
	}
	return nil
}

func validate(data FormData) FieldErrors {
	err := validatorInstance().Struct(data)
	if err == nil {
		return nil
	}

	ves, ok := err.(validator.ValidationErrors)
	if !ok {
		return FieldErrors{newFieldError("form", err.Error(), err)}
	}

	var errs FieldErrors
	for _, ve := range ves {
		field := Field(ve.Field())
		if errs.Has(field) {
			continue
		}
		errs = append(errs, newFieldError(field, fieldMessage(field, ve.Tag()), ve))
	}
	return errs.sorted()
}

func newFieldError(field Field, message string, err error) *apperrors.ValidationError {
	return apperrors.NewValidationError(string(field), message, err).(*apperrors.ValidationError)
}

func fieldMessage(field Field, tag string) string {
	if tag == "required" {
		return fieldLabel(field) + " is required"
	}

	switch field {
	case FieldHeight:
		return fmt.Sprintf("Height must be between %d-%d cm", MinHeight, MaxHeight)
	case FieldWeight:
		return fmt.Sprintf("Weight must be between %d-%d kg", MinWeight, MaxWeight)
	case FieldBuild:
		return "Build must be one of " + buildList()
	case FieldText:
		return fmt.Sprintf("Text must fit on %d lines", MaxTextLines)
	default:
		return fmt.Sprintf("%s failed validation for tag '%s'", field, tag)
	}
}

func fieldLabel(field Field) string {
	s := string(field)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
