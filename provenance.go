package gtable

import "sync"

// Provenance contains source information for configuration fields.
type Provenance struct {
	Fields []FieldProvenance
}

// FieldProvenance describes where a field's value came from.
type FieldProvenance struct {
	FieldPath  string `json:"field_path"`  // Dot notation (e.g., "RowGroupSep")
	KeyPath    string `json:"key_path"`    // Normalized key (e.g., "row_group.sep")
	SourceName string `json:"source_name"` // Source identifier (e.g., "env", "default")
	Secret     bool   `json:"secret,omitempty"`
}

// Lookup returns the provenance of the field at fieldPath.
func (p *Provenance) Lookup(fieldPath string) (FieldProvenance, bool) {
	for _, f := range p.Fields {
		if f.FieldPath == fieldPath {
			return f, true
		}
	}
	return FieldProvenance{}, false
}

var provenanceStore sync.Map

// GetProvenance returns provenance metadata for a configuration loaded by a Loader.
// Thread-safe.
func GetProvenance[T any](cfg *T) (*Provenance, bool) {
	if cfg == nil {
		return nil, false
	}

	value, ok := provenanceStore.Load(cfg)
	if !ok {
		return nil, false
	}

	prov, ok := value.(*Provenance)
	return prov, ok
}

func storeProvenance[T any](cfg *T, prov *Provenance) {
	if cfg != nil && prov != nil {
		provenanceStore.Store(cfg, prov)
	}
}
