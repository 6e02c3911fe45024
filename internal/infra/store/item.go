package store

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Item is a single stored document. Values may carry their native Go type
// (memory store) or the JSON decoding of it (postgres jsonb), so the
// accessors normalize both representations.
type Item map[string]any

func (it Item) ID() uuid.UUID {
	return it.UUID(FieldID)
}

func (it Item) UUID(field string) uuid.UUID {
	switch v := it[field].(type) {
	case uuid.UUID:
		return v
	case string:
		id, err := uuid.Parse(v)
		if err != nil {
			return uuid.Nil
		}
		return id
	default:
		return uuid.Nil
	}
}

func (it Item) String(field string) string {
	return asText(it[field])
}

func (it Item) StringPtr(field string) *string {
	raw, ok := it[field]
	if !ok || raw == nil {
		return nil
	}
	s := asText(raw)
	return &s
}

func (it Item) Int(field string) int {
	switch v := it[field].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	case json.Number:
		n, _ := v.Int64()
		return int(n)
	case string:
		n, _ := strconv.Atoi(v)
		return n
	default:
		return 0
	}
}

func (it Item) Bool(field string) bool {
	b, _ := it[field].(bool)
	return b
}

func (it Item) Time(field string) time.Time {
	t, _ := asTime(it[field])
	return t
}

func (it Item) TimePtr(field string) *time.Time {
	t, ok := asTime(it[field])
	if !ok {
		return nil
	}
	return &t
}

// Clone returns a shallow copy. Values stored through this package are
// scalars, so a shallow copy is enough to isolate callers from each other.
func (it Item) Clone() Item {
	out := make(Item, len(it))
	for k, v := range it {
		out[k] = v
	}
	return out
}

// normalize turns filter/patch values into their stored representation.
func normalize(v any) any {
	switch t := v.(type) {
	case uuid.UUID:
		return t.String()
	case time.Time:
		return t
	case interface{ String() string }:
		return t.String()
	default:
		return v
	}
}

func asText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case uuid.UUID:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	case time.Time:
		return t.UTC().Format(time.RFC3339Nano)
	case interface{ String() string }:
		return t.String()
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

func asTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		if t == "" {
			return time.Time{}, false
		}
		parsed, err := time.Parse(time.RFC3339Nano, t)
		if err != nil {
			parsed, err = time.Parse(time.RFC3339, t)
			if err != nil {
				return time.Time{}, false
			}
		}
		return parsed, true
	default:
		return time.Time{}, false
	}
}
