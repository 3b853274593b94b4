package gtable

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFrame_Validation(t *testing.T) {
	tests := []struct {
		name string
		cols []Column
		code string
	}{
		{
			name: "empty name",
			cols: []Column{{Name: "", Values: []any{1}}},
			code: ErrCodeRequired,
		},
		{
			name: "reserved name",
			cols: []Column{{Name: RowNamePrivate, Values: []any{1}}},
			code: ErrCodeReserved,
		},
		{
			name: "duplicate name",
			cols: []Column{{Name: "a", Values: []any{1}}, {Name: "a", Values: []any{2}}},
			code: ErrCodeDuplicate,
		},
		{
			name: "length mismatch",
			cols: []Column{{Name: "a", Values: []any{1, 2}}, {Name: "b", Values: []any{1}}},
			code: ErrCodeLength,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFrame(tt.cols...)
			assert.Nil(t, f)
			requireValidationCode(t, err, tt.code)
		})
	}
}

func TestNewFrame_Accessors(t *testing.T) {
	f := salesFrame(t)

	assert.Equal(t, 4, f.NumRows())
	assert.Equal(t, 5, f.NumCols())
	assert.Equal(t, []string{"region", "channel", "city", "sales", "active"}, f.ColumnNames())
	assert.True(t, f.HasColumn("city"))
	assert.False(t, f.HasColumn("nope"))

	values, ok := f.Column("sales")
	require.True(t, ok)
	assert.Equal(t, []any{12.5, 8.0, 20.25, 3.0}, values)

	_, ok = f.Column("nope")
	assert.False(t, ok)

	assert.Equal(t, []string{"1", "2", "3", "4"}, f.RowNames())
	assert.Nil(t, f.GroupVars())
}

func TestNewFrame_CopiesInput(t *testing.T) {
	values := []any{"a", "b"}
	f, err := NewFrame(Column{Name: "x", Values: values})
	require.NoError(t, err)

	values[0] = "changed"
	got, _ := f.Column("x")
	assert.Equal(t, "a", got[0])
}

func TestFrame_WithRowNames(t *testing.T) {
	f := salesFrame(t)

	named, err := f.WithRowNames([]string{"a", "b", "c", "d"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, named.RowNames())
	assert.Equal(t, []string{"1", "2", "3", "4"}, f.RowNames(), "original is unchanged")

	_, err = f.WithRowNames([]string{"a"})
	requireValidationCode(t, err, ErrCodeLength)
}

func TestFrame_GroupBy(t *testing.T) {
	f := salesFrame(t)

	grouped, err := f.GroupBy("region", "channel")
	require.NoError(t, err)
	assert.Equal(t, []string{"region", "channel"}, grouped.GroupVars())
	assert.Nil(t, f.GroupVars())

	ungrouped, err := grouped.GroupBy()
	require.NoError(t, err)
	assert.Nil(t, ungrouped.GroupVars())

	_, err = f.GroupBy("region", "missing")
	verr := requireValidationCode(t, err, ErrCodeUnknownColumn)
	assert.Contains(t, verr.Error(), `"missing"`)
}

func TestFrame_Clone(t *testing.T) {
	grouped, err := salesFrame(t).GroupBy("region")
	require.NoError(t, err)

	clone := grouped.Clone()
	clone.prependColumn(Column{Name: "extra", Values: []any{1, 2, 3, 4}})

	assert.False(t, grouped.HasColumn("extra"))
	assert.Equal(t, "extra", clone.ColumnNames()[0])
	assert.Equal(t, []string{"region"}, clone.GroupVars())

	idx, ok := clone.Column("region")
	require.True(t, ok)
	assert.Equal(t, "north", idx[0])
}

func TestKindOf(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name   string
		values []any
		want   Kind
	}{
		{"ints", []any{1, int64(2), uint8(3)}, KindNumber},
		{"floats with missing", []any{1.5, nil, float32(2)}, KindNumber},
		{"strings", []any{"a", "b"}, KindString},
		{"bools", []any{true, nil}, KindBool},
		{"times", []any{now, now}, KindTime},
		{"mixed", []any{1, "a"}, KindOther},
		{"all missing", []any{nil, nil}, KindOther},
		{"empty", nil, KindOther},
		{"unknown type", []any{struct{}{}}, KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.values))
		})
	}
}

func TestReadCSV(t *testing.T) {
	input := "name, qty, price, active, note\n" +
		"widget, 3, 1.5, true,\n" +
		"gadget, 10, 2, FALSE, fragile\n"

	f, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "qty", "price", "active", "note"}, f.ColumnNames())
	assert.Equal(t, 2, f.NumRows())

	qty, _ := f.Column("qty")
	assert.Equal(t, []any{int64(3), int64(10)}, qty)
	price, _ := f.Column("price")
	assert.Equal(t, []any{1.5, int64(2)}, price)
	active, _ := f.Column("active")
	assert.Equal(t, []any{true, false}, active)
	note, _ := f.Column("note")
	assert.Equal(t, []any{nil, "fragile"}, note)

	tbl, err := New(f, Params{RownameCol: Some("name")})
	require.NoError(t, err)
	priceInfo, _ := tbl.ColumnInfo("price")
	assert.Equal(t, KindNumber, priceInfo.Kind)
	assert.Equal(t, AlignRight, priceInfo.Align)
}

func TestReadCSV_Errors(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	assert.ErrorContains(t, err, "empty input")

	_, err = ReadCSV(strings.NewReader("a,b\n1,2,3\n"))
	assert.ErrorContains(t, err, "read csv record")

	_, err = ReadCSV(strings.NewReader("a,a\n1,2\n"))
	requireValidationCode(t, err, ErrCodeDuplicate)
}
