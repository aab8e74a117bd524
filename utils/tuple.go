package utils

import "reflect"

func Unpack2[Slice ~[]T, T any](s Slice) (first T, second T) {
	switch len(s) {
	default:
		return s[0], s[1]
	case 0:
		return
	case 1:
		first = s[0]
		return
	}
}

// Pair2 unpacks v when it is a slice or array of exactly two elements.
// Otherwise ok is false and n holds the element count, or -1 if v is not a
// slice or array at all.
func Pair2(v any) (first, second any, n int, ok bool) {
	switch s := v.(type) {
	case []any:
		if s == nil {
			return nil, nil, -1, false
		}
		if len(s) != 2 {
			return nil, nil, len(s), false
		}
		first, second = Unpack2(s)
		return first, second, 2, true
	case [2]any:
		return s[0], s[1], 2, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	default:
		return nil, nil, -1, false
	case reflect.Slice:
		if rv.IsNil() {
			return nil, nil, -1, false
		}
	case reflect.Array:
	}

	if rv.Len() != 2 {
		return nil, nil, rv.Len(), false
	}

	return rv.Index(0).Interface(), rv.Index(1).Interface(), 2, true
}
