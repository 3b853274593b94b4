package gtable

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/Azhovan/gtable/internal/normalize"
)

// tagConfig holds parsed directives from a struct field's `conf` tag.
type tagConfig struct {
	name       string   // Custom key path (name:custom.path)
	prefix     string   // Prefix for nested structs (prefix:foo)
	defValue   string   // Default value (default:value)
	min        string   // Minimum constraint (min:N)
	max        string   // Maximum constraint (max:M)
	oneof      []string // Allowed values (oneof:a,b,c)
	required   bool
	secret     bool
	hasDefault bool
}

var directiveNames = []string{"name:", "prefix:", "default:", "min:", "max:", "oneof:", "required", "secret"}

// parseTag parses a `conf` struct tag. Boolean directives may omit ":true".
// A oneof list runs until the next comma that starts a known directive.
func parseTag(tag string) tagConfig {
	cfg := tagConfig{}
	for _, directive := range splitDirectives(tag) {
		directive = strings.TrimSpace(directive)
		if directive == "" {
			continue
		}

		name, value, _ := strings.Cut(directive, ":")
		switch strings.TrimSpace(name) {
		case "name":
			cfg.name = value
		case "prefix":
			cfg.prefix = value
		case "default":
			cfg.defValue = value
			cfg.hasDefault = true
		case "min":
			cfg.min = value
		case "max":
			cfg.max = value
		case "oneof":
			for _, opt := range strings.Split(value, ",") {
				if opt = strings.TrimSpace(opt); opt != "" {
					cfg.oneof = append(cfg.oneof, opt)
				}
			}
		case "required":
			cfg.required = value != "false"
		case "secret":
			cfg.secret = value != "false"
		}
	}
	return cfg
}

func splitDirectives(tag string) []string {
	var directives []string
	start := 0
	for i := 0; i < len(tag); i++ {
		if tag[i] != ',' {
			continue
		}
		inOneof := strings.HasPrefix(strings.TrimSpace(tag[start:i]), "oneof:")
		if inOneof && !startsWithDirective(tag[i+1:]) {
			continue
		}
		directives = append(directives, tag[start:i])
		start = i + 1
	}
	if start < len(tag) {
		directives = append(directives, tag[start:])
	}
	return directives
}

func startsWithDirective(s string) bool {
	s = strings.TrimSpace(s)
	for _, d := range directiveNames {
		if strings.HasPrefix(s, d) {
			return true
		}
	}
	return false
}

// mergedEntry is a configuration value together with the source that won it.
type mergedEntry struct {
	value      any
	sourceName string
}

// determineKeyPath returns the configuration key for a field: the name
// directive if present, otherwise the lowercased field name under prefix.
func determineKeyPath(fieldName string, tags tagConfig, prefix string) string {
	if tags.name != "" {
		return strings.ToLower(tags.name)
	}
	return normalize.ApplyPrefix(prefix, strings.ToLower(fieldName))
}

var optionalPkgPath = reflect.TypeOf(Optional[int]{}).PkgPath()

func isOptionalType(t reflect.Type) bool {
	return t.Kind() == reflect.Struct &&
		t.PkgPath() == optionalPkgPath &&
		strings.HasPrefix(t.Name(), "Optional[")
}

// bindStruct assigns merged values (or tag defaults) to the fields of v,
// recording provenance. It returns conversion failures as FieldErrors.
func bindStruct(v reflect.Value, data map[string]mergedEntry, prov *[]FieldProvenance, fieldPrefix, keyPrefix string) []FieldError {
	var errs []FieldError
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		tags := parseTag(field.Tag.Get("conf"))
		fieldPath := normalize.ApplyPrefix(fieldPrefix, field.Name)
		keyPath := determineKeyPath(field.Name, tags, keyPrefix)
		fv := v.Field(i)

		if fv.Kind() == reflect.Struct && !isOptionalType(fv.Type()) {
			nested := keyPath
			if tags.prefix != "" {
				nested = tags.prefix
			}
			errs = append(errs, bindStruct(fv, data, prov, fieldPath, nested)...)
			continue
		}

		var raw any
		var sourceName string
		if entry, ok := data[keyPath]; ok && entry.value != nil {
			raw, sourceName = entry.value, entry.sourceName
		} else if tags.hasDefault {
			raw, sourceName = tags.defValue, "default"
		} else {
			continue
		}

		target := fv
		if isOptionalType(fv.Type()) {
			target = fv.Field(0)
		}
		if err := convertInto(target, raw); err != nil {
			errs = append(errs, FieldError{
				FieldPath: fieldPath,
				Code:      ErrCodeInvalidType,
				Message:   err.Error(),
			})
			continue
		}
		if isOptionalType(fv.Type()) {
			fv.Field(1).SetBool(true)
		}

		*prov = append(*prov, FieldProvenance{
			FieldPath:  fieldPath,
			KeyPath:    keyPath,
			SourceName: sourceName,
			Secret:     tags.secret,
		})
	}

	return errs
}

// convertInto assigns raw to dst, converting between the representations
// produced by env vars (strings) and YAML, TOML, JSON and HCL decoders.
func convertInto(dst reflect.Value, raw any) error {
	switch dst.Kind() {
	case reflect.String:
		dst.SetString(fmt.Sprint(raw))
	case reflect.Bool:
		switch x := raw.(type) {
		case bool:
			dst.SetBool(x)
		case string:
			b, err := strconv.ParseBool(strings.TrimSpace(x))
			if err != nil {
				return fmt.Errorf("cannot convert %q to bool", x)
			}
			dst.SetBool(b)
		default:
			return fmt.Errorf("cannot convert %T to bool", raw)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := toInt64(raw)
		if err != nil {
			return err
		}
		if dst.OverflowInt(n) {
			return fmt.Errorf("value %d overflows %s", n, dst.Type())
		}
		dst.SetInt(n)
	case reflect.Float32, reflect.Float64:
		f, err := toFloat64(raw)
		if err != nil {
			return err
		}
		dst.SetFloat(f)
	case reflect.Slice:
		if dst.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported slice type %s", dst.Type())
		}
		var items []string
		switch x := raw.(type) {
		case []string:
			items = append(items, x...)
		case []any:
			for _, item := range x {
				items = append(items, fmt.Sprint(item))
			}
		case string:
			for _, item := range strings.Split(x, ",") {
				if item = strings.TrimSpace(item); item != "" {
					items = append(items, item)
				}
			}
		default:
			return fmt.Errorf("cannot convert %T to %s", raw, dst.Type())
		}
		dst.Set(reflect.ValueOf(items).Convert(dst.Type()))
	default:
		return fmt.Errorf("unsupported field type %s", dst.Type())
	}
	return nil
}

func toInt64(raw any) (int64, error) {
	switch x := raw.(type) {
	case int:
		return int64(x), nil
	case int64:
		return x, nil
	case uint64:
		return int64(x), nil
	case float64:
		if x != float64(int64(x)) {
			return 0, fmt.Errorf("value %g is not an integer", x)
		}
		return int64(x), nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot convert %q to integer", x)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("cannot convert %T to integer", raw)
	}
}

func toFloat64(raw any) (float64, error) {
	switch x := raw.(type) {
	case float64:
		return x, nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, fmt.Errorf("cannot convert %q to float", x)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("cannot convert %T to float", raw)
	}
}
