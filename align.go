package gtable

// Alignment is the horizontal alignment of a column.
type Alignment string

// Alignment policies. AlignAuto resolves to a concrete alignment from the
// column's kind.
const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
	AlignAuto   Alignment = "auto"
)

// AlignColumns sets the alignment of the named columns, or of every column
// when none are named. It modifies t and returns it.
func (t *Table) AlignColumns(align Alignment, columns ...string) (*Table, error) {
	var errs fieldErrors
	switch align {
	case AlignLeft, AlignCenter, AlignRight, AlignAuto:
	default:
		errs.add("align", ErrCodeInvalidAlign, "alignment %q must be one of: left, center, right, auto", align)
	}

	targets := make(map[string]bool, len(columns))
	for _, c := range columns {
		if _, ok := t.ColumnInfo(c); !ok {
			errs.add("columns", ErrCodeUnknownColumn, "column %q not found in table", c)
		}
		targets[c] = true
	}
	if err := errs.err(); err != nil {
		return nil, err
	}

	for i := range t.boxhead {
		col := &t.boxhead[i]
		if len(columns) > 0 && !targets[col.Name] {
			continue
		}
		if align == AlignAuto {
			col.Align = autoAlignment(col.Kind)
		} else {
			col.Align = align
		}
	}
	return t, nil
}

// autoAlignment right-aligns numbers and times, left-aligns text and centers the rest.
func autoAlignment(k Kind) Alignment {
	switch k {
	case KindNumber, KindTime:
		return AlignRight
	case KindString:
		return AlignLeft
	default:
		return AlignCenter
	}
}
