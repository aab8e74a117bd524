package common

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
)

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// MapEntry is one reflected map entry.
type MapEntry struct {
	Key, Value reflect.Value
}

// SortedMapEntries snapshots the entries of a reflected map in a deterministic
// order: keys are grouped by kind, then ordered by value (numbers numerically,
// strings lexically, false before true). Keys of any other kind fall back to
// their printed form. Keys that compare equal, such as several NaN keys, are
// ordered by their printed values. Panics if m is not a map.
func SortedMapEntries(m reflect.Value) []MapEntry {
	entries := make([]MapEntry, 0, m.Len())
	for it := m.MapRange(); it.Next(); {
		entries = append(entries, MapEntry{Key: it.Key(), Value: it.Value()})
	}

	slices.SortStableFunc(entries, func(a, b MapEntry) int {
		return cmp.Or(
			CompareKeys(a.Key, b.Key),
			cmp.Compare(fmt.Sprint(a.Value.Interface()), fmt.Sprint(b.Value.Interface())),
		)
	})

	return entries
}

// CompareKeys orders two reflected map keys, see SortedMapEntries.
func CompareKeys(a, b reflect.Value) int {
	a, b = unwrap(a), unwrap(b)

	ra, rb := rank(a), rank(b)
	if ra != rb {
		return cmp.Compare(ra, rb)
	}

	switch ra {
	case rankInt:
		return cmp.Compare(a.Int(), b.Int())
	case rankUint:
		return cmp.Compare(a.Uint(), b.Uint())
	case rankFloat:
		return cmp.Compare(a.Float(), b.Float())
	case rankString:
		return cmp.Compare(a.String(), b.String())
	case rankBool:
		return cmp.Compare(boolRank(a.Bool()), boolRank(b.Bool()))
	case rankNil:
		return 0
	default:
		return cmp.Or(
			cmp.Compare(a.Type().String(), b.Type().String()),
			cmp.Compare(fmt.Sprint(a.Interface()), fmt.Sprint(b.Interface())),
		)
	}
}

const (
	rankNil = iota
	rankBool
	rankInt
	rankUint
	rankFloat
	rankString
	rankOther
)

func rank(v reflect.Value) int {
	if !v.IsValid() {
		return rankNil
	}

	switch v.Kind() {
	default:
		return rankOther
	case reflect.Bool:
		return rankBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rankInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rankUint
	case reflect.Float32, reflect.Float64:
		return rankFloat
	case reflect.String:
		return rankString
	}
}

// unwrap looks through interface-typed keys, as in map[any]V.
func unwrap(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}

	return v
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
