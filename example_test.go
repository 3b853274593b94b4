package gtable_test

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Azhovan/gtable"
)

// Example builds a grouped table with a row-label column.
func Example() {
	data, err := gtable.NewFrame(
		gtable.Column{Name: "region", Values: []any{"north", "north", "south"}},
		gtable.Column{Name: "city", Values: []any{"Oslo", "Bergen", "Rome"}},
		gtable.Column{Name: "sales", Values: []any{12.5, 8.0, 20.25}},
	)
	if err != nil {
		log.Fatal(err)
	}

	tbl, err := gtable.New(data, gtable.Params{
		ID:           "sales",
		RownameCol:   gtable.Some("city"),
		GroupnameCol: gtable.Some([]string{"region"}),
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("id:", tbl.ID())
	fmt.Println("groups:", tbl.RowGroups())
	for _, c := range tbl.Columns() {
		fmt.Printf("%s: %s, %s\n", c.Name, c.Type, c.Align)
	}

	// Output:
	// id: sales
	// groups: [north south]
	// region: row_group, left
	// city: stub, left
	// sales: default, right
}

// ExampleNew_overlap shows the error returned when the rowname column is also a group column.
func ExampleNew_overlap() {
	data, _ := gtable.NewFrame(
		gtable.Column{Name: "region", Values: []any{"north"}},
	)

	_, err := gtable.New(data, gtable.Params{
		RownameCol:   gtable.Some("region"),
		GroupnameCol: gtable.Some([]string{"region"}),
	})

	var verr *gtable.ValidationError
	if errors.As(err, &verr) {
		fmt.Println(verr.FieldErrors[0].Code)
	}

	// Output:
	// overlapping_columns
}

// ExampleReadCSV builds a table from CSV, grouping by the frame's annotation.
func ExampleReadCSV() {
	input := `team,player,points
red,ana,10
red,bo,7
blue,cy,12
`
	data, err := gtable.ReadCSV(strings.NewReader(input))
	if err != nil {
		log.Fatal(err)
	}
	data, err = data.GroupBy("team")
	if err != nil {
		log.Fatal(err)
	}

	tbl, err := gtable.New(data, gtable.Params{RownameCol: gtable.Some("player")})
	if err != nil {
		log.Fatal(err)
	}

	for _, row := range tbl.Stub().Rows {
		fmt.Printf("%d %s in %s\n", row.RowNum, row.RowID, row.GroupLabel)
	}

	// Output:
	// 1 ana in red
	// 2 bo in red
	// 3 cy in blue
}

// ExampleBuilder_Build loads defaults before building.
func ExampleBuilder_Build() {
	defaults, err := gtable.LoadDefaults(context.Background(), staticSource{
		"row_group.sep": " / ",
		"auto_align":    "false",
	})
	if err != nil {
		log.Fatal(err)
	}

	data, _ := gtable.NewFrame(
		gtable.Column{Name: "year", Values: []any{2023, 2024}},
		gtable.Column{Name: "quarter", Values: []any{"Q1", "Q1"}},
		gtable.Column{Name: "total", Values: []any{10, 12}},
	)
	data, _ = data.GroupBy("year", "quarter")

	tbl, err := gtable.NewBuilder().WithDefaults(defaults).Build(data, gtable.Params{})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(tbl.RowGroups())
	total, _ := tbl.ColumnInfo("total")
	fmt.Println(total.Align)

	// Output:
	// [2023 / Q1 2024 / Q1]
	// center
}

// ExampleDumpTable prints a table's structure.
func ExampleDumpTable() {
	data, _ := gtable.NewFrame(
		gtable.Column{Name: "name", Values: []any{"a", "b"}},
	)
	tbl, _ := gtable.New(data, gtable.Params{ID: "demo", RownameCol: gtable.Some("name")})

	var b strings.Builder
	if err := gtable.DumpTable(&b, tbl); err != nil {
		log.Fatal(err)
	}
	for _, line := range strings.Split(b.String(), "\n") {
		if strings.HasPrefix(line, "columns.") || strings.HasPrefix(line, "stub.rowname_col") {
			fmt.Fprintln(os.Stdout, line)
		}
	}

	// Output:
	// columns.name: type=stub kind=string align=left label="name"
	// stub.rowname_col: "name"
}

// staticSource serves a fixed map as configuration.
type staticSource map[string]any

func (s staticSource) Load(ctx context.Context) (map[string]any, error) {
	return s, nil
}

func (s staticSource) Name() string {
	return "static"
}
