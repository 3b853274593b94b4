package gtable

import (
	"fmt"
	"strconv"
	"strings"
)

// naValue is the label component used for a missing group value.
const naValue = "NA"

// resolved holds construction arguments after validation and default resolution.
type resolved struct {
	data             *Frame
	rownameCol       string
	groupnameCols    []string
	rownamesToStub   bool
	autoAlign        bool
	id               string
	hasID            bool
	sep              string
	caption          string
	locale           string
	rowGroupAsColumn bool
	idLength         int
}

// initStep populates exactly one sub-state slot of a table. A step may read
// only slots populated by the steps before it.
type initStep struct {
	name string
	fn   func(t *Table, in *resolved) error
}

var initSteps = []initStep{
	{"data", initData},
	{"boxhead", initBoxhead},
	{"stub", initStub},
	{"row_groups", initRowGroups},
	{"stub_others", initStubOthers},
	{"heading", initHeading},
	{"spanners", initSpanners},
	{"stubhead", initStubhead},
	{"footnotes", initFootnotes},
	{"source_notes", initSourceNotes},
	{"formats", initFormats},
	{"styles", initStyles},
	{"summaries", initSummaries},
	{"options", initOptions},
	{"transforms", initTransforms},
	{"has_built", initHasBuilt},
}

// initData retains a copy of the input, adding the private row-name column
// when row names go to the stub.
func initData(t *Table, in *resolved) error {
	data := in.data.Clone()
	if in.rownamesToStub {
		names := data.RowNames()
		values := make([]any, len(names))
		for i, n := range names {
			values[i] = n
		}
		data.prependColumn(Column{Name: RowNamePrivate, Values: values})
	}
	t.data = data
	return nil
}

func initBoxhead(t *Table, _ *resolved) error {
	t.boxhead = make([]ColumnInfo, 0, t.data.NumCols())
	for _, name := range t.data.ColumnNames() {
		values, _ := t.data.Column(name)
		t.boxhead = append(t.boxhead, ColumnInfo{
			Name:  name,
			Label: name,
			Kind:  KindOf(values),
			Type:  ColumnDefault,
			Align: AlignCenter,
		})
	}
	return nil
}

// initStub assigns the row caption and group columns. A rowname column that
// is not in the data is ignored, as is a group set with any missing column.
func initStub(t *Table, in *resolved) error {
	n := t.data.NumRows()
	stub := Stub{
		Separator: in.sep,
		Rows:      make([]StubRow, n),
	}
	for i := range stub.Rows {
		stub.Rows[i].RowNum = i + 1
	}

	if values, ok := t.data.Column(in.rownameCol); ok {
		stub.RownameCol = in.rownameCol
		t.setColumnType(in.rownameCol, ColumnStub)
		for i, v := range values {
			stub.Rows[i].RowID = cellString(v)
		}
	}

	if len(in.groupnameCols) > 0 && t.hasAllColumns(in.groupnameCols) {
		stub.GroupnameCols = append([]string(nil), in.groupnameCols...)
		groupValues := make([][]any, len(in.groupnameCols))
		for j, col := range in.groupnameCols {
			groupValues[j], _ = t.data.Column(col)
			t.setColumnType(col, ColumnRowGroup)
		}

		parts := make([]string, len(groupValues))
		for i := range stub.Rows {
			for j := range groupValues {
				parts[j] = cellString(groupValues[j][i])
			}
			label := strings.Join(parts, in.sep)
			stub.Rows[i].GroupID = label
			stub.Rows[i].GroupLabel = label
		}
	}

	t.stub = stub
	return nil
}

// initRowGroups orders groups by first appearance in the stub.
func initRowGroups(t *Table, _ *resolved) error {
	t.rowGroups = []string{}
	if len(t.stub.GroupnameCols) == 0 {
		return nil
	}
	seen := make(map[string]bool)
	for _, row := range t.stub.Rows {
		if seen[row.GroupID] {
			continue
		}
		seen[row.GroupID] = true
		t.rowGroups = append(t.rowGroups, row.GroupID)
	}
	return nil
}

func initStubOthers(t *Table, _ *resolved) error {
	t.stubOthers = []string{}
	return nil
}

func initHeading(t *Table, _ *resolved) error {
	t.heading = Heading{}
	return nil
}

func initSpanners(t *Table, _ *resolved) error {
	t.spanners = []Spanner{}
	return nil
}

func initStubhead(t *Table, _ *resolved) error {
	t.stubhead = Stubhead{}
	return nil
}

func initFootnotes(t *Table, _ *resolved) error {
	t.footnotes = []Footnote{}
	return nil
}

func initSourceNotes(t *Table, _ *resolved) error {
	t.sourceNotes = []string{}
	return nil
}

func initFormats(t *Table, _ *resolved) error {
	t.formats = []Format{}
	return nil
}

func initStyles(t *Table, _ *resolved) error {
	t.styles = []Style{}
	return nil
}

func initSummaries(t *Table, _ *resolved) error {
	t.summaries = []Summary{}
	return nil
}

func initOptions(t *Table, in *resolved) error {
	t.options = newOptionSet()

	id, err := randomID(in.idLength)
	if err != nil {
		return err
	}
	t.options.values[OptTableID] = id
	t.options.values[OptTableCaption] = in.caption
	t.options.values[OptRowGroupSep] = in.sep
	t.options.values[OptRowGroupAsColumn] = in.rowGroupAsColumn
	t.options.values[OptLocale] = in.locale
	return nil
}

func initTransforms(t *Table, _ *resolved) error {
	t.transforms = []Transform{}
	return nil
}

func initHasBuilt(t *Table, _ *resolved) error {
	t.built = false
	return nil
}

func (t *Table) setColumnType(name string, typ ColumnType) {
	for i := range t.boxhead {
		if t.boxhead[i].Name == name {
			t.boxhead[i].Type = typ
			return
		}
	}
}

func (t *Table) hasAllColumns(names []string) bool {
	for _, n := range names {
		if !t.data.HasColumn(n) {
			return false
		}
	}
	return true
}

// cellString renders a cell as a label. Missing values become "NA".
func cellString(v any) string {
	switch x := v.(type) {
	case nil:
		return naValue
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	default:
		return fmt.Sprint(x)
	}
}
