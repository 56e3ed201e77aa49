package storage

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
)

// Convert interprets a decoded value as T.
//
// Rules:
//   - nil (JSON null) never converts
//   - a value already of type T is returned as is
//   - json.Number converts to integer kinds when it is an exact integer in
//     range, and to float kinds when it parses; never to strings
//   - strings and bools convert to named types of the same kind
//
// Anything else is a mismatch.
func Convert[T any](v any) (T, bool) {
	var zero T
	if v == nil {
		return zero, false
	}
	if t, ok := v.(T); ok {
		return t, true
	}

	target := reflect.TypeOf((*T)(nil)).Elem()
	out, ok := convertValue(v, target)
	if !ok {
		return zero, false
	}
	return out.Interface().(T), true
}

func convertValue(v any, target reflect.Type) (reflect.Value, bool) {
	switch src := v.(type) {
	case json.Number:
		return convertNumber(src, target)
	case string:
		if target.Kind() == reflect.String {
			return reflect.ValueOf(src).Convert(target), true
		}
	case bool:
		if target.Kind() == reflect.Bool {
			return reflect.ValueOf(src).Convert(target), true
		}
	}
	return reflect.Value{}, false
}

func convertNumber(n json.Number, target reflect.Type) (reflect.Value, bool) {
	out := reflect.New(target).Elem()

	switch target.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, ok := parseInt(n)
		if !ok || out.OverflowInt(i) {
			return reflect.Value{}, false
		}
		out.SetInt(i)
		return out, true

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, ok := parseUint(n)
		if !ok || out.OverflowUint(u) {
			return reflect.Value{}, false
		}
		out.SetUint(u)
		return out, true

	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(n.String(), target.Bits())
		if err != nil {
			return reflect.Value{}, false
		}
		out.SetFloat(f)
		return out, true
	}
	return reflect.Value{}, false
}

// parseInt accepts integer literals and exact integral floats such as 4.2e1.
func parseInt(n json.Number) (int64, bool) {
	if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
		return i, true
	}
	f, err := strconv.ParseFloat(n.String(), 64)
	if err != nil || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

func parseUint(n json.Number) (uint64, bool) {
	if u, err := strconv.ParseUint(n.String(), 10, 64); err == nil {
		return u, true
	}
	f, err := strconv.ParseFloat(n.String(), 64)
	if err != nil || f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 {
		return 0, false
	}
	return uint64(f), true
}
