package tablr

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Record is the unit of table input: an ordered collection of named field
// values. Keys returns the field names in the order the record carries
// them; Value looks a field up by name. Any type implementing both can be
// rendered.
type Record interface {
	Keys() []string
	Value(key string) (any, bool)
}

// KeyValue is one named field of a record.
type KeyValue struct {
	Key   string
	Value any
}

// Pairs is an ordered field list and the canonical [Record] implementation.
// The decoders in this package produce Pairs so that field order survives
// formats whose native Go representation (a map) would lose it.
type Pairs []KeyValue

// Keys returns the field names in order.
func (p Pairs) Keys() []string {
	keys := make([]string, len(p))
	for i, kv := range p {
		keys[i] = kv.Key
	}
	return keys
}

// Value returns the first field named key.
func (p Pairs) Value(key string) (any, bool) {
	for _, kv := range p {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return nil, false
}

// tabReplacement substitutes tab characters in cell text. Tabs have no
// fixed display width, so they are normalized before any measurement.
const tabReplacement = "    "

// displayString converts a field value to its cell text. Nil renders empty.
// Maps and slices render as compact JSON, whose key order is stable, so
// repeated runs produce identical text. Everything else goes through the
// value's String method or fmt.
func displayString(v any) string {
	var s string
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		s = t
	case fmt.Stringer:
		s = t.String()
	case map[string]any, []any:
		if b, err := json.Marshal(t); err == nil {
			s = string(b)
		} else {
			s = fmt.Sprintf("%v", t)
		}
	default:
		s = fmt.Sprintf("%v", t)
	}
	if strings.Contains(s, "\t") {
		s = strings.ReplaceAll(s, "\t", tabReplacement)
	}
	return s
}
