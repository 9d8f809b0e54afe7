// Package serde provides the JSON text helpers used across the kit: a
// canonical serializer and a plain-data deserializer that fills a target
// type without running any of its construction logic.
package serde

import "encoding/json"

// Serializer turns a source value into its transport representation.
type Serializer[Src any, Dst any] interface {
	Serialize(src Src) (Dst, error)
}

// SerializerFunc adapts a function to the Serializer interface.
type SerializerFunc[Src any, Dst any] func(src Src) (Dst, error)

func (fn SerializerFunc[Src, Dst]) Serialize(src Src) (Dst, error) { return fn(src) }

// Deserializer rebuilds a source value from its transport representation.
type Deserializer[Src any, Dst any] interface {
	Deserialize(dst Dst) (Src, error)
}

// DeserializerFunc adapts a function to the Deserializer interface.
type DeserializerFunc[Src any, Dst any] func(dst Dst) (Src, error)

func (fn DeserializerFunc[Src, Dst]) Deserialize(dst Dst) (Src, error) { return fn(dst) }

// Serialize returns the canonical JSON text for v. Struct fields encode in
// declaration order, slices as ordered sequences.
func Serialize(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Deserialize parses text into a zero-valued T, taking fields as-is from the
// parsed data. No constructor or validation logic of T is involved - this is
// a plain-data cast. Malformed text propagates the json error unchanged.
func Deserialize[T any](text string) (T, error) {
	var out T
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// JSON returns a Serializer/Deserializer pair for T over JSON text.
func JSON[T any]() (Serializer[T, string], Deserializer[T, string]) {
	ser := SerializerFunc[T, string](func(src T) (string, error) { return Serialize(src) })
	de := DeserializerFunc[T, string](func(text string) (T, error) { return Deserialize[T](text) })
	return ser, de
}
