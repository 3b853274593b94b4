package gtable

import (
	"time"
)

// Kind classifies the values held by a column.
type Kind string

// Column kinds.
const (
	KindNumber Kind = "number"
	KindString Kind = "string"
	KindBool   Kind = "bool"
	KindTime   Kind = "time"
	KindOther  Kind = "other"
)

// KindOf returns the kind shared by all non-nil values. Mixed or empty
// columns are KindOther.
func KindOf(values []any) Kind {
	kind := Kind("")
	for _, v := range values {
		if v == nil {
			continue
		}
		k := kindOfValue(v)
		if kind == "" {
			kind = k
		} else if kind != k {
			return KindOther
		}
	}
	if kind == "" {
		return KindOther
	}
	return kind
}

func kindOfValue(v any) Kind {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return KindNumber
	case string:
		return KindString
	case bool:
		return KindBool
	case time.Time:
		return KindTime
	default:
		return KindOther
	}
}
