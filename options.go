package gtable

import (
	"reflect"
	"sort"
)

// Option names set during construction.
const (
	OptTableID          = "table_id"
	OptTableCaption     = "table_caption"
	OptRowGroupSep      = "row_group_sep"
	OptRowGroupAsColumn = "row_group_as_column"
	OptLocale           = "locale"
)

// optionDefaults lists every known option with its default value. The
// default's dynamic type is the only type SetOption accepts for that option.
var optionDefaults = []struct {
	name  string
	value any
}{
	{OptTableID, ""},
	{OptTableCaption, ""},
	{"table_width", "auto"},
	{"table_layout", "fixed"},
	{"table_font_size", "16px"},
	{"heading_align", "center"},
	{"column_labels_hidden", false},
	{OptRowGroupSep, DefaultRowGroupSep},
	{OptRowGroupAsColumn, false},
	{"row_group_default_label", ""},
	{"stub_separate", true},
	{"footnotes_marks", "numbers"},
	{OptLocale, ""},
	{"container_overflow_x", true},
	{"quarto_disable_processing", false},
}

type optionSet struct {
	values map[string]any
}

func newOptionSet() *optionSet {
	s := &optionSet{values: make(map[string]any, len(optionDefaults))}
	for _, d := range optionDefaults {
		s.values[d.name] = d.value
	}
	return s
}

func (s *optionSet) get(name string) any {
	if s == nil {
		return nil
	}
	return s.values[name]
}

func (s *optionSet) set(name string, value any) error {
	current, ok := s.values[name]
	if !ok {
		return &ValidationError{FieldErrors: []FieldError{{
			FieldPath: name,
			Code:      ErrCodeUnknownKey,
			Message:   "unknown table option",
		}}}
	}
	if reflect.TypeOf(current) != reflect.TypeOf(value) {
		return &ValidationError{FieldErrors: []FieldError{{
			FieldPath: name,
			Code:      ErrCodeInvalidType,
			Message:   "expected " + reflect.TypeOf(current).String() + ", got " + typeName(value),
		}}}
	}
	s.values[name] = value
	return nil
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}

// Option returns the current value of a table option.
func (t *Table) Option(name string) (any, bool) {
	if !t.initialized() {
		return nil, false
	}
	v, ok := t.options.values[name]
	return v, ok
}

// SetOption sets a table option. Unknown names and values whose type differs
// from the option's default fail with *ValidationError. A table not produced
// by Build fails with ErrNilTable.
func (t *Table) SetOption(name string, value any) error {
	if !t.initialized() {
		return ErrNilTable
	}
	return t.options.set(name, value)
}

// Options returns a copy of all table options.
func (t *Table) Options() map[string]any {
	if !t.initialized() {
		return map[string]any{}
	}
	out := make(map[string]any, len(t.options.values))
	for k, v := range t.options.values {
		out[k] = v
	}
	return out
}

// OptionNames returns all known option names, sorted.
func OptionNames() []string {
	names := make([]string, 0, len(optionDefaults))
	for _, d := range optionDefaults {
		names = append(names, d.name)
	}
	sort.Strings(names)
	return names
}
