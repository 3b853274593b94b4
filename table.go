package gtable

// Object is implemented by every table value this package produces.
// Downstream formatting and rendering functions accept an Object.
type Object interface {
	// ID returns the table identifier stored in the table_id option.
	ID() string
	isTable()
}

// ColumnType is the role a column plays in the table layout.
type ColumnType string

// Column roles.
const (
	ColumnDefault  ColumnType = "default"
	ColumnStub     ColumnType = "stub"
	ColumnRowGroup ColumnType = "row_group"
)

// ColumnInfo is the column header metadata kept for one data column.
type ColumnInfo struct {
	Name  string     `json:"name"`
	Label string     `json:"label"`
	Units string     `json:"units,omitempty"`
	Kind  Kind       `json:"kind"`
	Type  ColumnType `json:"type"`
	Align Alignment  `json:"align"`
	Width string     `json:"width,omitempty"`
}

// Stub holds the row-label assignment of a table.
type Stub struct {
	RownameCol    string    `json:"rowname_col,omitempty"`
	GroupnameCols []string  `json:"groupname_cols,omitempty"`
	Separator     string    `json:"separator"`
	Rows          []StubRow `json:"rows"`
}

// StubRow carries the row caption and group membership of one data row.
// RowID is empty when no column supplies row captions; GroupID is empty
// when the table has no row groups.
type StubRow struct {
	RowNum     int    `json:"rownum"`
	RowID      string `json:"row_id,omitempty"`
	GroupID    string `json:"group_id,omitempty"`
	GroupLabel string `json:"group_label,omitempty"`
}

// Heading is the title block above the column labels.
type Heading struct {
	Title     string `json:"title,omitempty"`
	Subtitle  string `json:"subtitle,omitempty"`
	Preheader string `json:"preheader,omitempty"`
}

// Spanner groups several columns under one label.
type Spanner struct {
	ID      string   `json:"id"`
	Label   string   `json:"label"`
	Columns []string `json:"columns"`
	Level   int      `json:"level"`
}

// Stubhead is the label of the cell above the stub.
type Stubhead struct {
	Label string `json:"label,omitempty"`
}

// Footnote attaches a note to a table location.
type Footnote struct {
	Location string   `json:"location"`
	Columns  []string `json:"columns,omitempty"`
	Rows     []int    `json:"rows,omitempty"`
	Note     string   `json:"note"`
}

// Format records a formatter applied to a set of cells.
type Format struct {
	Name    string   `json:"name"`
	Columns []string `json:"columns"`
	Rows    []int    `json:"rows,omitempty"`
}

// Style records style declarations applied to a table location.
type Style struct {
	Location     string            `json:"location"`
	Columns      []string          `json:"columns,omitempty"`
	Rows         []int             `json:"rows,omitempty"`
	Declarations map[string]string `json:"declarations"`
}

// Summary describes a summary row block.
type Summary struct {
	Groups  []string `json:"groups,omitempty"`
	Columns []string `json:"columns"`
	Fns     []string `json:"fns"`
}

// Transform records a cell text transformation.
type Transform struct {
	Name    string   `json:"name"`
	Columns []string `json:"columns"`
	Rows    []int    `json:"rows,omitempty"`
}

// Table is the initialized table object. Every sub-state slot is populated
// by its own initializer during Build; later transformations mutate it.
type Table struct {
	data        *Frame
	boxhead     []ColumnInfo
	stub        Stub
	rowGroups   []string
	stubOthers  []string
	heading     Heading
	spanners    []Spanner
	stubhead    Stubhead
	footnotes   []Footnote
	sourceNotes []string
	formats     []Format
	styles      []Style
	summaries   []Summary
	options     *optionSet
	transforms  []Transform
	built       bool
}

var _ Object = (*Table)(nil)

func (t *Table) isTable() {}

// ID returns the table identifier.
func (t *Table) ID() string {
	id, _ := t.options.get(OptTableID).(string)
	return id
}

// initialized reports whether t was produced by Build.
func (t *Table) initialized() bool {
	return t != nil && t.options != nil && t.data != nil
}

// Data returns the retained copy of the input frame.
func (t *Table) Data() *Frame { return t.data }

// Columns returns the column header metadata in data order.
func (t *Table) Columns() []ColumnInfo {
	return append([]ColumnInfo(nil), t.boxhead...)
}

// ColumnInfo returns the header metadata of one column.
func (t *Table) ColumnInfo(name string) (ColumnInfo, bool) {
	for _, c := range t.boxhead {
		if c.Name == name {
			return c, true
		}
	}
	return ColumnInfo{}, false
}

// Stub returns the row-label assignment.
func (t *Table) Stub() Stub {
	s := t.stub
	s.GroupnameCols = append([]string(nil), s.GroupnameCols...)
	s.Rows = append([]StubRow(nil), s.Rows...)
	return s
}

// RowGroups returns the group ids in display order.
func (t *Table) RowGroups() []string { return append([]string(nil), t.rowGroups...) }

// OtherStubElements returns extra stub columns registered by later transformations.
func (t *Table) OtherStubElements() []string { return append([]string(nil), t.stubOthers...) }

func (t *Table) Heading() Heading { return t.heading }
func (t *Table) Spanners() []Spanner { return append([]Spanner(nil), t.spanners...) }
func (t *Table) Stubhead() Stubhead { return t.stubhead }
func (t *Table) Footnotes() []Footnote { return append([]Footnote(nil), t.footnotes...) }
func (t *Table) SourceNotes() []string { return append([]string(nil), t.sourceNotes...) }
func (t *Table) Formats() []Format { return append([]Format(nil), t.formats...) }
func (t *Table) Styles() []Style { return append([]Style(nil), t.styles...) }
func (t *Table) Summaries() []Summary { return append([]Summary(nil), t.summaries...) }
func (t *Table) Transforms() []Transform { return append([]Transform(nil), t.transforms...) }

// Built reports whether a rendering has been produced from this table.
func (t *Table) Built() bool { return t.built }

// MarkBuilt is called by renderers once a display rendering exists.
func (t *Table) MarkBuilt() { t.built = true }
