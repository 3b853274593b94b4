package gtable

import (
	"context"
	"fmt"

	"golang.org/x/text/language"
)

// Defaults are process-wide construction defaults, typically loaded from the
// environment or a config file:
//
//	GTABLE_ROW_GROUP__SEP=" / "
//	GTABLE_LOCALE=de-DE
type Defaults struct {
	RowGroupSep Optional[string] `conf:"name:row_group.sep"`
	Locale      string           `conf:"name:locale"`
	AutoAlign   Optional[bool]   `conf:"name:auto_align"`
	IDLength    int              `conf:"name:id_length,default:10,min:4,max:64"`
}

// validateLocale rejects locales that are not BCP 47 tags.
var validateLocale = ValidatorFunc[Defaults](func(ctx context.Context, d *Defaults) error {
	if d.Locale == "" {
		return nil
	}
	if _, err := language.Parse(d.Locale); err != nil {
		return &ValidationError{FieldErrors: []FieldError{{
			FieldPath: "Locale",
			Code:      ErrCodeInvalidLocale,
			Message:   fmt.Sprintf("locale %q is not a valid BCP 47 tag", d.Locale),
		}}}
	}
	return nil
})

// LoadDefaults loads Defaults from sources in order (later override earlier).
func LoadDefaults(ctx context.Context, sources ...Source) (*Defaults, error) {
	loader := NewLoader[Defaults]().WithValidator(validateLocale)
	for _, src := range sources {
		loader.WithSource(src)
	}
	return loader.Load(ctx)
}
