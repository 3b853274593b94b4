package gtable

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// validateStruct walks a bound struct and checks required, min, max and
// oneof directives. Optional fields are checked only when set.
func validateStruct(v reflect.Value, parentPath string) []FieldError {
	var errs []FieldError
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		fieldPath := field.Name
		if parentPath != "" {
			fieldPath = parentPath + "." + field.Name
		}
		tags := parseTag(field.Tag.Get("conf"))
		fv := v.Field(i)

		switch {
		case isOptionalType(fv.Type()):
			if fv.Field(1).Bool() {
				errs = append(errs, validateField(fv.Field(0), fieldPath, tags)...)
			} else if tags.required {
				errs = append(errs, FieldError{FieldPath: fieldPath, Code: ErrCodeRequired, Message: "field is required but not provided"})
			}
		case fv.Kind() == reflect.Struct:
			errs = append(errs, validateStruct(fv, fieldPath)...)
		default:
			errs = append(errs, validateField(fv, fieldPath, tags)...)
		}
	}

	return errs
}

func validateField(fv reflect.Value, fieldPath string, tags tagConfig) []FieldError {
	if fv.IsZero() {
		if tags.required {
			return []FieldError{{FieldPath: fieldPath, Code: ErrCodeRequired, Message: "field is required but not provided"}}
		}
		return nil
	}

	var errs []FieldError
	if n, unit, ok := measure(fv); ok {
		if tags.min != "" {
			if lim, err := strconv.ParseFloat(tags.min, 64); err == nil && n < lim {
				errs = append(errs, FieldError{
					FieldPath: fieldPath,
					Code:      ErrCodeMin,
					Message:   fmt.Sprintf("%s %g is below minimum %g", unit, n, lim),
				})
			}
		}
		if tags.max != "" {
			if lim, err := strconv.ParseFloat(tags.max, 64); err == nil && n > lim {
				errs = append(errs, FieldError{
					FieldPath: fieldPath,
					Code:      ErrCodeMax,
					Message:   fmt.Sprintf("%s %g exceeds maximum %g", unit, n, lim),
				})
			}
		}
	}

	if len(tags.oneof) > 0 {
		s := fmt.Sprint(fv.Interface())
		found := false
		for _, allowed := range tags.oneof {
			if s == allowed {
				found = true
				break
			}
		}
		if !found {
			errs = append(errs, FieldError{
				FieldPath: fieldPath,
				Code:      ErrCodeOneOf,
				Message:   fmt.Sprintf("value %q must be one of: %s", s, strings.Join(tags.oneof, ", ")),
			})
		}
	}

	return errs
}

// measure returns the quantity min/max apply to: the number itself, or the
// length of a string.
func measure(fv reflect.Value) (float64, string, bool) {
	switch fv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(fv.Int()), "value", true
	case reflect.Float32, reflect.Float64:
		return fv.Float(), "value", true
	case reflect.String:
		return float64(len(fv.String())), "string length", true
	default:
		return 0, "", false
	}
}
