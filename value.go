package pathq

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Object is a string-keyed mapping that remembers the order its keys were
// first inserted in. Query results iterate objects in this order.
type Object struct {
	m *orderedmap.OrderedMap[string, any]
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{m: orderedmap.New[string, any]()}
}

// NewObjectFrom builds an object from alternating keys and values.
// It panics if a key is not a string.
func NewObjectFrom(kvs ...any) *Object {
	o := NewObject()
	for i := 0; i+1 < len(kvs); i += 2 {
		o.Set(kvs[i].(string), kvs[i+1])
	}
	return o
}

// Set stores v under key. An existing key keeps its position.
func (o *Object) Set(key string, v any) {
	o.m.Set(key, v)
}

// Get looks up key.
func (o *Object) Get(key string) (any, bool) {
	return o.m.Get(key)
}

// Len returns the number of keys.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return o.m.Len()
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	ks := make([]string, 0, o.Len())
	o.Range(func(k string, _ any) bool {
		ks = append(ks, k)
		return true
	})
	return ks
}

// Values returns the values in key insertion order.
func (o *Object) Values() []any {
	vs := make([]any, 0, o.Len())
	o.Range(func(_ string, v any) bool {
		vs = append(vs, v)
		return true
	})
	return vs
}

// Range calls f for each pair in insertion order until f returns false.
func (o *Object) Range(f func(key string, v any) bool) {
	if o == nil {
		return
	}
	for p := o.m.Oldest(); p != nil; p = p.Next() {
		if !f(p.Key, p.Value) {
			return
		}
	}
}

// MarshalJSON implements json.Marshaler, keeping key order.
func (o *Object) MarshalJSON() ([]byte, error) {
	return Marshal(o)
}
