package gtable

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"strings"
)

// Loader loads and validates a configuration struct from multiple sources.
// Sources are processed in order (later override earlier).
type Loader[T any] struct {
	sources    []Source
	validators []Validator[T]
	strict     bool // Fail on unknown keys (default: true)
	logger     *slog.Logger
}

// NewLoader creates a Loader with no sources/validators and strict mode enabled.
func NewLoader[T any]() *Loader[T] {
	return &Loader[T]{
		sources:    make([]Source, 0),
		validators: make([]Validator[T], 0),
		strict:     true,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithSource adds a source. Sources are processed in order (later override earlier).
func (l *Loader[T]) WithSource(src Source) *Loader[T] {
	l.sources = append(l.sources, src)
	return l
}

// WithValidator adds a custom validator (executed after tag-based validation).
func (l *Loader[T]) WithValidator(v Validator[T]) *Loader[T] {
	l.validators = append(l.validators, v)
	return l
}

// WithLogger sets the logger used for load diagnostics.
func (l *Loader[T]) WithLogger(logger *slog.Logger) *Loader[T] {
	if logger != nil {
		l.logger = logger
	}
	return l
}

// Strict controls whether unknown keys cause errors. Default: true.
func (l *Loader[T]) Strict(strict bool) *Loader[T] {
	l.strict = strict
	return l
}

// Load loads, merges, binds, and validates configuration from all sources.
// Returns populated config or *ValidationError with all field errors.
func (l *Loader[T]) Load(ctx context.Context) (*T, error) {
	merged := make(map[string]mergedEntry)
	for _, src := range l.sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, err := src.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("load source %s: %w", src.Name(), err)
		}
		l.logger.Debug("loaded configuration source", "source", src.Name(), "keys", len(data))

		for key, value := range data {
			merged[strings.ToLower(key)] = mergedEntry{value: value, sourceName: src.Name()}
		}
	}

	var cfg T
	typ := reflect.TypeOf(cfg)
	if typ == nil || typ.Kind() != reflect.Struct {
		return nil, errors.New("gtable: configuration type must be a struct")
	}

	var allErrors []FieldError
	if l.strict {
		valid := collectValidKeys(typ, "")
		for key := range merged {
			if !valid[key] {
				allErrors = append(allErrors, FieldError{
					FieldPath: key,
					Code:      ErrCodeUnknownKey,
					Message:   "unknown configuration key (strict mode)",
				})
			}
		}
		if len(allErrors) > 0 {
			return nil, &ValidationError{FieldErrors: allErrors}
		}
	}

	out := new(T)
	v := reflect.ValueOf(out).Elem()

	var provFields []FieldProvenance
	allErrors = append(allErrors, bindStruct(v, merged, &provFields, "", "")...)
	allErrors = append(allErrors, validateStruct(v, "")...)

	for i, validator := range l.validators {
		if err := validator.Validate(ctx, out); err != nil {
			var valErr *ValidationError
			if errors.As(err, &valErr) {
				allErrors = append(allErrors, valErr.FieldErrors...)
				continue
			}
			return nil, fmt.Errorf("validator %d failed: %w", i, err)
		}
	}

	if len(allErrors) > 0 {
		return nil, &ValidationError{FieldErrors: allErrors}
	}

	storeProvenance(out, &Provenance{Fields: provFields})
	return out, nil
}

// collectValidKeys returns every key path the struct type can bind.
func collectValidKeys(t reflect.Type, prefix string) map[string]bool {
	valid := make(map[string]bool)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		tags := parseTag(field.Tag.Get("conf"))
		keyPath := determineKeyPath(field.Name, tags, prefix)

		if field.Type.Kind() == reflect.Struct && !isOptionalType(field.Type) {
			nested := keyPath
			if tags.prefix != "" {
				nested = tags.prefix
			}
			for k := range collectValidKeys(field.Type, nested) {
				valid[k] = true
			}
			continue
		}
		valid[keyPath] = true
	}
	return valid
}
