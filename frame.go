package gtable

import (
	"strconv"
)

// RowNamePrivate is the reserved column that carries row names into the stub.
// User frames may not contain a column with this name.
const RowNamePrivate = "__GT_ROWNAME_PRIVATE__"

// Column is a named, ordered slice of cell values. A nil cell is a missing value.
type Column struct {
	Name   string
	Values []any
}

// Frame is the tabular input of a table: rows × named columns, optional
// structural row names and an optional grouping annotation.
type Frame struct {
	columns   []Column
	index     map[string]int
	rowNames  []string
	groupVars []string
}

// NewFrame creates a Frame from columns. Columns must share one length and
// carry unique, non-empty names.
func NewFrame(cols ...Column) (*Frame, error) {
	var errs fieldErrors
	f := &Frame{
		columns: make([]Column, 0, len(cols)),
		index:   make(map[string]int, len(cols)),
	}

	rows := -1
	for i, col := range cols {
		path := "columns[" + strconv.Itoa(i) + "]"
		switch {
		case col.Name == "":
			errs.add(path, ErrCodeRequired, "column name is required")
			continue
		case col.Name == RowNamePrivate:
			errs.add(path, ErrCodeReserved, "column name %q is reserved", col.Name)
			continue
		}
		if _, dup := f.index[col.Name]; dup {
			errs.add(path, ErrCodeDuplicate, "column %q appears more than once", col.Name)
			continue
		}
		if rows < 0 {
			rows = len(col.Values)
		} else if len(col.Values) != rows {
			errs.add(path, ErrCodeLength, "column %q has %d values, expected %d", col.Name, len(col.Values), rows)
			continue
		}

		f.index[col.Name] = len(f.columns)
		f.columns = append(f.columns, Column{Name: col.Name, Values: append([]any(nil), col.Values...)})
	}

	if err := errs.err(); err != nil {
		return nil, err
	}
	return f, nil
}

// NumRows returns the number of rows.
func (f *Frame) NumRows() int {
	if len(f.columns) == 0 {
		return len(f.rowNames)
	}
	return len(f.columns[0].Values)
}

// NumCols returns the number of columns.
func (f *Frame) NumCols() int {
	return len(f.columns)
}

// ColumnNames returns column names in frame order.
func (f *Frame) ColumnNames() []string {
	names := make([]string, len(f.columns))
	for i, c := range f.columns {
		names[i] = c.Name
	}
	return names
}

// HasColumn reports whether the frame contains a column called name.
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.index[name]
	return ok
}

// Column returns the values of the named column.
func (f *Frame) Column(name string) ([]any, bool) {
	i, ok := f.index[name]
	if !ok {
		return nil, false
	}
	return f.columns[i].Values, true
}

// RowNames returns the structural row identifiers. Frames without explicit
// row names are numbered "1".."n".
func (f *Frame) RowNames() []string {
	if f.rowNames != nil {
		return append([]string(nil), f.rowNames...)
	}
	names := make([]string, f.NumRows())
	for i := range names {
		names[i] = strconv.Itoa(i + 1)
	}
	return names
}

// GroupVars returns the grouping annotation, or nil if the frame is ungrouped.
func (f *Frame) GroupVars() []string {
	return append([]string(nil), f.groupVars...)
}

// WithRowNames returns a copy of the frame carrying the given row names.
func (f *Frame) WithRowNames(names []string) (*Frame, error) {
	if len(names) != f.NumRows() {
		return nil, &ValidationError{FieldErrors: []FieldError{{
			FieldPath: "row_names",
			Code:      ErrCodeLength,
			Message:   "got " + strconv.Itoa(len(names)) + " row names for " + strconv.Itoa(f.NumRows()) + " rows",
		}}}
	}
	out := f.Clone()
	out.rowNames = append([]string(nil), names...)
	return out, nil
}

// GroupBy returns a copy of the frame annotated as grouped by cols, in order.
// Calling it with no columns removes the annotation.
func (f *Frame) GroupBy(cols ...string) (*Frame, error) {
	var errs fieldErrors
	for _, c := range cols {
		if !f.HasColumn(c) {
			errs.add("group_vars", ErrCodeUnknownColumn, "column %q not found in frame", c)
		}
	}
	if err := errs.err(); err != nil {
		return nil, err
	}

	out := f.Clone()
	out.groupVars = nil
	if len(cols) > 0 {
		out.groupVars = append([]string(nil), cols...)
	}
	return out, nil
}

// Clone returns a copy of the frame. Cell values are copied shallowly.
func (f *Frame) Clone() *Frame {
	out := &Frame{
		columns: make([]Column, len(f.columns)),
		index:   make(map[string]int, len(f.index)),
	}
	for i, c := range f.columns {
		out.columns[i] = Column{Name: c.Name, Values: append([]any(nil), c.Values...)}
		out.index[c.Name] = i
	}
	if f.rowNames != nil {
		out.rowNames = append([]string(nil), f.rowNames...)
	}
	if f.groupVars != nil {
		out.groupVars = append([]string(nil), f.groupVars...)
	}
	return out
}

// prependColumn inserts col as the first column. Used for the private row-name column.
func (f *Frame) prependColumn(col Column) {
	f.columns = append([]Column{col}, f.columns...)
	for i, c := range f.columns {
		f.index[c.Name] = i
	}
}
