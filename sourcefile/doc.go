// Package sourcefile loads gtable defaults from YAML, JSON, TOML or HCL files.
//
// Format is auto-detected from extension (.yaml, .yml, .json, .toml, .hcl).
// Nested keys are flattened to dot paths:
//
//	row_group:
//	  sep: " / "
//
// binds to the "row_group.sep" key.
//
// Example:
//
//	source := sourcefile.New("gtable.yaml", sourcefile.Options{Required: true})
//	defaults, err := gtable.LoadDefaults(ctx, source)
package sourcefile
