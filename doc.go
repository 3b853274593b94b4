// Package gtable builds the initial table object that downstream formatting
// and rendering code works on.
//
// Quick Start:
//
//	data, _ := gtable.NewFrame(
//	    gtable.Column{Name: "region", Values: []any{"north", "north", "south"}},
//	    gtable.Column{Name: "city", Values: []any{"Oslo", "Bergen", "Rome"}},
//	    gtable.Column{Name: "sales", Values: []any{12.5, 8.0, 20.25}},
//	)
//
//	tbl, err := gtable.New(data, gtable.Params{
//	    RownameCol:   gtable.Some("city"),
//	    GroupnameCol: gtable.Some([]string{"region"}),
//	})
//
// Process-wide defaults (group separator, locale, auto alignment) are loaded
// with NewLoader / LoadDefaults from the sourceenv and sourcefile packages and
// handed to a Builder:
//
//	defaults, err := gtable.LoadDefaults(ctx, sourceenv.New(sourceenv.Options{Prefix: "GTABLE_"}))
//	tbl, err := gtable.NewBuilder().WithDefaults(defaults).Build(data, gtable.Params{})
//
// Tag directives understood by the loader: name:path, prefix:path, default:val,
// required, min:N, max:N, oneof:a,b,c, secret
package gtable
