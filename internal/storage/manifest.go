package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"maps"
	"slices"
)

// Manifest maps keys to inline JSON values.
//
// Numbers are held as json.Number so integers survive unchanged.
type Manifest map[string]any

var (
	errTrailingData = errors.New("trailing data after JSON value")
	errNotObject    = errors.New("manifest root is not a JSON object")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParseManifest decodes a manifest document. The document must be a single
// JSON object; anything else is an error.
func ParseManifest(data []byte) (Manifest, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errTrailingData
	}

	obj, ok := root.(map[string]any)
	if !ok {
		return nil, errNotObject
	}
	return Manifest(obj), nil
}

// Keys returns the manifest keys in sorted order. An empty manifest yields
// an empty, non-nil slice.
func (m Manifest) Keys() []string {
	if len(m) == 0 {
		return []string{}
	}
	return slices.Sorted(maps.Keys(m))
}
