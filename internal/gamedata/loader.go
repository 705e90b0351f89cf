package gamedata

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Raw returns an embedded document byte for byte.
func Raw(name string) ([]byte, error) {
	data, err := dataFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded %s: %w", name, err)
	}
	return data, nil
}

// Load decodes an embedded JSON document into a T. Anything after the
// first JSON value is an error.
func Load[T any](name string) (T, error) {
	var v T
	data, err := Raw(name)
	if err != nil {
		return v, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&v); err != nil {
		return v, fmt.Errorf("failed to decode %s: %w", name, err)
	}
	if dec.More() {
		return v, fmt.Errorf("failed to decode %s: trailing data after document", name)
	}
	return v, nil
}

// MustLoad is Load for documents the game cannot start without.
func MustLoad[T any](name string) T {
	v, err := Load[T](name)
	if err != nil {
		panic(err)
	}
	return v
}
