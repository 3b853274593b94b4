package gtable

import (
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/text/language"
)

// DefaultRownameCol is the rowname column used when Params.RownameCol is unset.
const DefaultRownameCol = "rowname"

// DefaultRowGroupSep joins the components of a multi-column group label
// when neither Params nor Defaults provide a separator.
const DefaultRowGroupSep = " - "

// Params are the per-table construction arguments.
type Params struct {
	// RownameCol names the column supplying row captions. Unset means
	// "rowname"; Some("") means no rowname column. Ignored when RownamesToStub
	// is true.
	RownameCol Optional[string]

	// GroupnameCol names the columns whose values label row groups. Unset means
	// the frame's grouping annotation; an empty set means no grouping.
	GroupnameCol Optional[[]string]

	// RownamesToStub sources row captions from the frame's row names.
	RownamesToStub bool

	// AutoAlign runs automatic column alignment after construction. Default true.
	AutoAlign Optional[bool]

	// ID is the table identifier. It must be nil or a string; nil generates a
	// random identifier.
	ID any

	// RowGroupSep joins multi-column group labels.
	RowGroupSep Optional[string]

	Caption          string
	Locale           string
	RowGroupAsColumn bool
}

// Builder constructs tables using shared defaults.
// It is safe for concurrent use once configured.
type Builder struct {
	defaults *Defaults
	logger   *slog.Logger
}

// NewBuilder creates a Builder with built-in defaults and a discarding logger.
func NewBuilder() *Builder {
	return &Builder{
		defaults: &Defaults{IDLength: DefaultIDLength},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithDefaults sets the process-wide defaults consulted when Params leaves a value unset.
func (b *Builder) WithDefaults(d *Defaults) *Builder {
	if d != nil {
		b.defaults = d
	}
	return b
}

// WithLogger sets the logger used for construction diagnostics.
func (b *Builder) WithLogger(l *slog.Logger) *Builder {
	if l != nil {
		b.logger = l
	}
	return b
}

// New builds a table with built-in defaults. See Builder.Build.
func New(data *Frame, p Params) (*Table, error) {
	return NewBuilder().Build(data, p)
}

// Build validates p, runs the initializer chain over data and returns the
// table. Validation failures return *ValidationError and no table.
func (b *Builder) Build(data *Frame, p Params) (*Table, error) {
	in, err := b.resolve(data, p)
	if err != nil {
		b.logger.Debug("table arguments rejected", "error", err)
		return nil, err
	}

	t := &Table{}
	for _, step := range initSteps {
		if err := step.fn(t, in); err != nil {
			return nil, fmt.Errorf("initialize %s: %w", step.name, err)
		}
		b.logger.Debug("initialized table component", "step", step.name)
	}

	if in.hasID {
		t.options.values[OptTableID] = in.id
	}

	b.logger.Debug("table constructed",
		"table_id", t.ID(),
		"rows", t.data.NumRows(),
		"columns", t.data.NumCols(),
		"row_groups", len(t.rowGroups),
	)

	if in.autoAlign {
		return t.AlignColumns(AlignAuto)
	}
	return t, nil
}

// resolve checks arguments and fills in defaults before any initializer runs.
func (b *Builder) resolve(data *Frame, p Params) (*resolved, error) {
	var errs fieldErrors

	in := &resolved{data: data}

	if p.ID != nil {
		id, ok := p.ID.(string)
		if !ok {
			errs.add("id", ErrCodeInvalidID, "table id must be a single string, got %T %v", p.ID, p.ID)
		} else {
			in.id, in.hasID = id, true
		}
	}

	if data == nil {
		errs.add("data", ErrCodeRequired, "table data is required")
		return nil, errs.err()
	}

	in.rownameCol = p.RownameCol.OrDefault(DefaultRownameCol)
	if p.RownamesToStub {
		in.rownameCol = RowNamePrivate
		in.rownamesToStub = true
	}

	groups := p.GroupnameCol.OrDefault(data.GroupVars())
	if len(groups) > 0 {
		in.groupnameCols = append([]string(nil), groups...)
	}

	for _, g := range in.groupnameCols {
		if in.rownameCol != "" && g == in.rownameCol {
			errs.add("groupname_col", ErrCodeOverlap,
				"rowname column %q must not be included in the groupname columns", g)
		}
	}

	locale := p.Locale
	if locale == "" {
		locale = b.defaults.Locale
	}
	if locale != "" {
		tag, err := language.Parse(locale)
		if err != nil {
			errs.add("locale", ErrCodeInvalidLocale, "locale %q is not a valid BCP 47 tag: %v", locale, err)
		} else {
			in.locale = tag.String()
		}
	}

	if err := errs.err(); err != nil {
		return nil, err
	}

	in.sep = p.RowGroupSep.OrDefault(b.defaults.RowGroupSep.OrDefault(DefaultRowGroupSep))
	in.autoAlign = p.AutoAlign.OrDefault(b.defaults.AutoAlign.OrDefault(true))
	in.caption = p.Caption
	in.rowGroupAsColumn = p.RowGroupAsColumn
	in.idLength = clampIDLength(b.defaults.IDLength)
	return in, nil
}

// clampIDLength keeps directly constructed Defaults within the range the
// loader enforces. Zero means DefaultIDLength.
func clampIDLength(n int) int {
	switch {
	case n == 0:
		return DefaultIDLength
	case n < MinIDLength:
		return MinIDLength
	case n > MaxIDLength:
		return MaxIDLength
	}
	return n
}
