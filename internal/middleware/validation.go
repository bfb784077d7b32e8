package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "sheetreport/internal/errors"
)

// QueryValidator validates decoded query parameters using struct tags. Field
// names in messages come from the `query` tag.
type QueryValidator struct {
	validator *validator.Validate
}

// NewQueryValidator creates a validator with the custom "workbook" rule registered.
func NewQueryValidator() *QueryValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterValidation("workbook", isWorkbookName)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &QueryValidator{validator: v}
}

// Bind copies query parameters into the string fields of dst (a pointer to a
// struct tagged with `query`) and validates the result.
func (q *QueryValidator) Bind(r *http.Request, dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("query destination must be a pointer to a struct, got %T", dst)
	}

	values := r.URL.Query()
	elem := rv.Elem()
	for i := 0; i < elem.NumField(); i++ {
		field := elem.Type().Field(i)
		name := strings.SplitN(field.Tag.Get("query"), ",", 2)[0]
		if name == "" || name == "-" || field.Type.Kind() != reflect.String {
			continue
		}
		if values.Has(name) {
			elem.Field(i).SetString(strings.TrimSpace(values.Get(name)))
		}
	}

	return q.Validate(dst)
}

// Validate checks v against its validate tags. The first failing field is
// reported as a VALIDATION error.
func (q *QueryValidator) Validate(v any) error {
	err := q.validator.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperrors.NewAppError(apperrors.ErrTypeValidation, "invalid query parameters", err)
	}

	first := fieldErrs[0]
	return apperrors.NewValidationError(first.Field(), formatValidationError(first))
}

// formatValidationError formats validation error messages
func formatValidationError(err validator.FieldError) string {
	field := err.Field()
	param := err.Param()

	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "numeric", "number":
		return fmt.Sprintf("%s must be a number", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(param, " ", ", "))
	case "workbook":
		return fmt.Sprintf("%s must be a plain .xlsx file name", field)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, param)
	default:
		return fmt.Sprintf("%s failed %s validation", field, err.Tag())
	}
}

// isWorkbookName accepts base names ending in .xlsx, rejecting anything that
// could escape the data directory.
func isWorkbookName(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if name == "" || len(name) > 255 {
		return false
	}
	if strings.Contains(name, "..") || strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return false
	}
	return strings.EqualFold(filepath.Ext(name), ".xlsx")
}
