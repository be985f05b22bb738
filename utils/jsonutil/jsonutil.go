// Package jsonutil provides small serialization helpers: a deterministic
// value-to-text encoder and a typed decoder. Both are thin wrappers over
// encoding/json - map keys come out sorted, so the textual form is stable
// regardless of insertion order.
package jsonutil

import (
	"encoding/json"
	"fmt"
)

// Serialize produces a deterministic textual encoding of a value.
func Serialize(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("unable to serialize value: %w", err)
	}
	return string(data), nil
}

// Deserialize parses text into a value of the requested type, making the
// type's behavior available on the result.
func Deserialize[T any](text string) (T, error) {
	var v T
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return v, fmt.Errorf("unable to deserialize value: %w", err)
	}
	return v, nil
}
