package confloader

import "errors"

// ErrReadBytesNotSupported is returned when ReadBytes is called on a map provider.
var ErrReadBytesNotSupported = errors.New("confloader: map provider has no byte form")

// mapProvider feeds a flat map of dotted keys into koanf.
// Keys are unflattened on load, so "storage.dir" nests under "storage".
type mapProvider map[string]any

// ReadBytes always fails; koanf calls Read for this provider.
func (m mapProvider) ReadBytes() ([]byte, error) {
	return nil, ErrReadBytesNotSupported
}

// Read returns the configuration map with dotted keys expanded.
func (m mapProvider) Read() (map[string]any, error) {
	out := make(map[string]any, len(m))
	for k, v := range m {
		insert(out, k, v)
	}
	return out, nil
}

func insert(dst map[string]any, key string, v any) {
	for i := 0; i < len(key); i++ {
		if key[i] != '.' {
			continue
		}
		child, ok := dst[key[:i]].(map[string]any)
		if !ok {
			child = make(map[string]any)
			dst[key[:i]] = child
		}
		insert(child, key[i+1:], v)
		return
	}
	dst[key] = v
}
