// Package object provides an insertion-ordered, string-keyed mapping that can
// inherit keys from a prototype object.
//
// Lookups walk the prototype chain, key enumeration visits the object's own
// keys first and then, on request, the keys reachable through its prototypes
// that are not shadowed by a nearer object.
package object

// Object is an ordered mapping with an optional prototype. The zero value is
// an empty object without a prototype. An Object is not safe for concurrent
// mutation.
type Object struct {
	proto *Object
	keys  []string
	vals  map[string]any
}

// New creates an empty object inheriting from proto. A nil proto means no
// inheritance.
func New(proto *Object) *Object {
	return &Object{proto: proto}
}

// With sets key to value and returns the object, for literal-like construction.
func (o *Object) With(key string, value any) *Object {
	o.Set(key, value)
	return o
}

// Set adds or replaces an own key. A new key goes to the end of the order.
func (o *Object) Set(key string, value any) {
	if o.vals == nil {
		o.vals = make(map[string]any)
	}

	if _, exists := o.vals[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = value
}

// Delete removes an own key. Inherited keys are not affected.
func (o *Object) Delete(key string) {
	if _, exists := o.vals[key]; !exists {
		return
	}

	delete(o.vals, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
}

// Get returns the value for key, looking through the prototype chain.
func (o *Object) Get(key string) (any, bool) {
	for cur := o; cur != nil; cur = cur.proto {
		if v, ok := cur.vals[key]; ok {
			return v, true
		}
	}

	return nil, false
}

// HasOwn reports whether key is set directly on the object.
func (o *Object) HasOwn(key string) bool {
	_, ok := o.vals[key]
	return ok
}

// Proto returns the prototype, or nil.
func (o *Object) Proto() *Object {
	return o.proto
}

// Len returns the number of own keys.
func (o *Object) Len() int {
	return len(o.keys)
}

// OwnKeys returns a copy of the own keys in insertion order.
func (o *Object) OwnKeys() []string {
	return append([]string(nil), o.keys...)
}

// Keys returns the own keys in insertion order and, when inherit is set, the
// keys of every prototype in chain order that a nearer object does not shadow.
func (o *Object) Keys(inherit bool) []string {
	if !inherit || o.proto == nil {
		return o.OwnKeys()
	}

	seen := make(map[string]struct{}, len(o.keys))
	var keys []string
	for cur := o; cur != nil; cur = cur.proto {
		for _, k := range cur.keys {
			if _, dup := seen[k]; dup {
				continue
			}

			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}

	return keys
}

// Map returns a plain map of the visible keys.
func (o *Object) Map(inherit bool) map[string]any {
	keys := o.Keys(inherit)
	res := make(map[string]any, len(keys))
	for _, k := range keys {
		res[k], _ = o.Get(k)
	}

	return res
}
