// Package sourceenv loads gtable defaults from environment variables.
//
// Key normalization: ROW_GROUP__SEP → row_group.sep, ID_LENGTH → id_length
//
// Example:
//
//	source := sourceenv.New(sourceenv.Options{Prefix: "GTABLE_"})
//	defaults, err := gtable.LoadDefaults(ctx, source)
package sourceenv
