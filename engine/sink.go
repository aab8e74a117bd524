package engine

import (
	"fmt"
	"reflect"

	"polyiter/kind"
	"polyiter/object"
)

// Pair is a key/value callback result for BuildMapping. Any two-element slice
// or array works as well.
type Pair struct {
	Key, Value any
}

// sink is the output mapping of a BuildMapping traversal.
type sink interface {
	set(key, value any) error
	result() any
}

type anyMapSink map[any]any

func (s anyMapSink) set(key, value any) error {
	if key != nil && !reflect.ValueOf(key).Comparable() {
		return fmt.Errorf("key of type %T is not comparable", key)
	}

	s[key] = value
	return nil
}

func (s anyMapSink) result() any { return map[any]any(s) }

type reflectMapSink struct {
	m reflect.Value
}

func (s reflectMapSink) set(key, value any) error {
	kv, err := assignable(key, s.m.Type().Key(), "key")
	if err != nil {
		return err
	}
	if !kv.Comparable() {
		return fmt.Errorf("key of type %T is not comparable", key)
	}

	vv, err := assignable(value, s.m.Type().Elem(), "value")
	if err != nil {
		return err
	}

	s.m.SetMapIndex(kv, vv)
	return nil
}

func (s reflectMapSink) result() any { return s.m.Interface() }

type objectSink struct {
	obj *object.Object
}

func (s objectSink) set(key, value any) error {
	k, ok := key.(string)
	if !ok {
		return fmt.Errorf("key must be a string but instead is %s", kind.Classify(key))
	}

	s.obj.Set(k, value)
	return nil
}

func (s objectSink) result() any { return s.obj }

// newSink wraps a caller supplied base mapping. ok is false when base cannot
// receive pairs.
func newSink(base any) (sink, bool) {
	switch b := base.(type) {
	case map[any]any:
		if b == nil {
			return nil, false
		}
		return anyMapSink(b), true
	case *object.Object:
		if b == nil {
			return nil, false
		}
		return objectSink{obj: b}, true
	}

	rv := reflect.ValueOf(base)
	if rv.Kind() != reflect.Map || rv.IsNil() {
		return nil, false
	}

	return reflectMapSink{m: rv}, true
}

func assignable(v any, t reflect.Type, what string) (reflect.Value, error) {
	if v == nil {
		switch t.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, fmt.Errorf("%s nil cannot be stored as %s", what, t)
	}

	rv := reflect.ValueOf(v)
	if !rv.Type().AssignableTo(t) {
		return reflect.Value{}, fmt.Errorf("%s of type %s cannot be stored as %s", what, rv.Type(), t)
	}

	return rv, nil
}
