// Package normalize maps raw configuration keys onto the lowercase
// dot-separated paths used by the gtable loader.
package normalize

import (
	"strings"
)

// ToLowerDotPath normalizes a raw key to a lowercase dot-separated path.
// Double underscores separate levels; single underscores stay in the name.
//   - "ROW_GROUP__SEP" → "row_group.sep"
//   - "ID_LENGTH" → "id_length"
func ToLowerDotPath(key string) string {
	return strings.ToLower(strings.ReplaceAll(key, "__", "."))
}

// ApplyPrefix joins prefix and key with a dot, skipping empty parts.
func ApplyPrefix(prefix, key string) string {
	if prefix == "" {
		return key
	}
	if key == "" {
		return prefix
	}
	return prefix + "." + key
}

// JoinPath joins non-empty path segments with dots.
func JoinPath(segments ...string) string {
	out := ""
	for _, s := range segments {
		out = ApplyPrefix(out, s)
	}
	return out
}
