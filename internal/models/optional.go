package models

import "encoding/json"

// Optional distinguishes a JSON field that was absent from one that was
// present, including present-as-null for pointer types. The zero value is
// unset; decoding any value, null included, marks it set.
type Optional[T any] struct {
	value T
	set   bool
}

// Set returns an Optional holding the given value.
func Set[T any](value T) Optional[T] {
	return Optional[T]{value: value, set: true}
}

// IsSet reports whether a value was provided.
func (o Optional[T]) IsSet() bool {
	return o.set
}

// Get returns the value and whether it was provided.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// MustGet returns the value, panicking when unset. Callers check IsSet
// first.
func (o Optional[T]) MustGet() T {
	if !o.set {
		panic("optional: value not set")
	}
	return o.value
}

// UnmarshalJSON marks the field set. json.Unmarshal only invokes this for
// keys present in the payload, so absent fields stay unset.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.set = true
	return json.Unmarshal(data, &o.value)
}

// MarshalJSON encodes the held value; unset encodes the zero value.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.value)
}
