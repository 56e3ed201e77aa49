package output

import (
	"fmt"
	"io"
	"reflect"
)

// TextFormatter formats data for people.
//
// Strings print as-is, string slices one per line, tables and slices of
// structs as aligned columns. Anything else prints as single-line JSON.
type TextFormatter struct {
	NoHeaders bool
}

// Format formats data as text.
func (f *TextFormatter) Format(w io.Writer, data any) error {
	switch v := data.(type) {
	case nil:
		return nil
	case string:
		_, err := fmt.Fprintln(w, v)
		return err
	case []string:
		for _, s := range v {
			if _, err := fmt.Fprintln(w, s); err != nil {
				return err
			}
		}
		return nil
	case *Table:
		return v.RenderWithOptions(w, f.NoHeaders)
	case Table:
		return v.RenderWithOptions(w, f.NoHeaders)
	case fmt.Stringer:
		_, err := fmt.Fprintln(w, v.String())
		return err
	}

	rv := reflect.ValueOf(data)
	if rv.Kind() == reflect.Slice && structElem(rv.Type().Elem()) {
		table, err := sliceToTable(rv)
		if err != nil {
			return err
		}
		return table.RenderWithOptions(w, f.NoHeaders)
	}
	if rv.Kind() == reflect.Struct || (rv.Kind() == reflect.Ptr && structElem(rv.Type())) {
		return structToTable(reflect.Indirect(rv)).RenderWithOptions(w, f.NoHeaders)
	}

	s, err := compactJSON(data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s)
	return err
}

func structElem(t reflect.Type) bool {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}
