package gtable

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
)

// DumpOption configures dump behavior using the functional options pattern.
type DumpOption func(*dumpConfig)

type dumpConfig struct {
	asJSON bool
	indent string
}

// AsJSON outputs the table description as JSON instead of text.
func AsJSON() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.asJSON = true
	}
}

// WithIndent sets the indentation for JSON output. Default is two spaces.
func WithIndent(indent string) DumpOption {
	return func(cfg *dumpConfig) {
		cfg.indent = indent
	}
}

// DumpTable writes a human-readable description of t: its options, column
// header, stub assignment and row groups. Cell data is not written.
func DumpTable(w io.Writer, t *Table, opts ...DumpOption) error {
	if !t.initialized() {
		return ErrNilTable
	}

	cfg := dumpConfig{indent: "  "}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.asJSON {
		return dumpAsJSON(w, t, cfg)
	}
	return dumpAsText(w, t)
}

func dumpAsText(w io.Writer, t *Table) error {
	var b strings.Builder

	names := make([]string, 0, len(t.options.values))
	for name := range t.options.values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, "options.%s: %s\n", name, formatScalar(t.options.values[name]))
	}

	for _, col := range t.boxhead {
		fmt.Fprintf(&b, "columns.%s: type=%s kind=%s align=%s label=%q\n",
			col.Name, col.Type, col.Kind, col.Align, col.Label)
	}

	fmt.Fprintf(&b, "stub.rowname_col: %q\n", t.stub.RownameCol)
	fmt.Fprintf(&b, "stub.groupname_cols: [%s]\n", strings.Join(t.stub.GroupnameCols, ", "))
	fmt.Fprintf(&b, "stub.separator: %q\n", t.stub.Separator)
	fmt.Fprintf(&b, "row_groups: [%s]\n", strings.Join(t.rowGroups, ", "))
	fmt.Fprintf(&b, "built: %t\n", t.built)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write error: %w", err)
	}
	return nil
}

func dumpAsJSON(w io.Writer, t *Table, cfg dumpConfig) error {
	doc := describe(t)

	var data []byte
	var err error
	if cfg.indent != "" {
		data, err = json.MarshalIndent(doc, "", cfg.indent)
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("json marshal error: %w", err)
	}

	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write error: %w", err)
	}
	return nil
}

// tableDescription is the serialized view of a table shared by dumps and snapshots.
type tableDescription struct {
	TableID   string         `json:"table_id"`
	Options   map[string]any `json:"options"`
	Columns   []ColumnInfo   `json:"columns"`
	Stub      Stub           `json:"stub"`
	RowGroups []string       `json:"row_groups"`
	Rows      int            `json:"rows"`
	Built     bool           `json:"built"`
}

func describe(t *Table) tableDescription {
	return tableDescription{
		TableID:   t.ID(),
		Options:   t.Options(),
		Columns:   t.Columns(),
		Stub:      t.Stub(),
		RowGroups: t.RowGroups(),
		Rows:      t.data.NumRows(),
		Built:     t.built,
	}
}

func formatScalar(v any) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprint(v)
}
