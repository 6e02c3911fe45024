package store

import (
	"time"
)

type Op string

const (
	OpEq  Op = "eq"
	OpIn  Op = "in"
	OpLt  Op = "lt"  // range: strictly before
	OpGte Op = "gte" // range: at or after
)

type Condition struct {
	Field string
	Op    Op
	Value any
}

// Filter is a small immutable builder. Each method returns a copy so filters
// can be composed without aliasing surprises.
type Filter struct {
	conds    []Condition
	sortDesc string
	limit    int
}

func Where() Filter {
	return Filter{}
}

func (f Filter) add(c Condition) Filter {
	conds := make([]Condition, len(f.conds), len(f.conds)+1)
	copy(conds, f.conds)
	f.conds = append(conds, c)
	return f
}

func (f Filter) Eq(field string, value any) Filter {
	return f.add(Condition{Field: field, Op: OpEq, Value: normalize(value)})
}

func (f Filter) In(field string, values ...any) Filter {
	vs := make([]any, len(values))
	for i, v := range values {
		vs[i] = normalize(v)
	}
	return f.add(Condition{Field: field, Op: OpIn, Value: vs})
}

// Before matches items whose field is strictly earlier than t.
func (f Filter) Before(field string, t time.Time) Filter {
	return f.add(Condition{Field: field, Op: OpLt, Value: t})
}

// Since matches items whose field is at or after t.
func (f Filter) Since(field string, t time.Time) Filter {
	return f.add(Condition{Field: field, Op: OpGte, Value: t})
}

func (f Filter) SortDesc(field string) Filter {
	f.sortDesc = field
	return f
}

func (f Filter) Limit(n int) Filter {
	f.limit = n
	return f
}

func (f Filter) Conditions() []Condition { return f.conds }
func (f Filter) SortDescField() string   { return f.sortDesc }
func (f Filter) LimitCount() int         { return f.limit }

// Matches evaluates the filter against a single item. The memory store and
// tests share this; the postgres store compiles the same conditions to SQL.
func (f Filter) Matches(it Item) bool {
	for _, c := range f.conds {
		if !matchCondition(it, c) {
			return false
		}
	}
	return true
}

func matchCondition(it Item, c Condition) bool {
	raw, ok := it[c.Field]
	if !ok || raw == nil {
		return false
	}

	switch c.Op {
	case OpEq:
		return asText(raw) == asText(c.Value)
	case OpIn:
		vs, ok := c.Value.([]any)
		if !ok {
			return false
		}
		got := asText(raw)
		for _, v := range vs {
			if got == asText(v) {
				return true
			}
		}
		return false
	case OpLt:
		ft, want, ok := timePair(raw, c.Value)
		return ok && ft.Before(want)
	case OpGte:
		ft, want, ok := timePair(raw, c.Value)
		return ok && !ft.Before(want)
	default:
		return false
	}
}

func timePair(raw, want any) (time.Time, time.Time, bool) {
	ft, ok1 := asTime(raw)
	wt, ok2 := asTime(want)
	return ft, wt, ok1 && ok2
}
