// Package format writes CLI command output as JSON (default) or a small EDN
// subset. Structs are routed through their json tags in both cases so field
// naming stays consistent across formats.
package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// Write writes v in the requested format ("json" or "edn"; empty means json).
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch format {
	case "", "json":
		return writeJSON(w, v, pretty)
	case "edn":
		return writeEDN(w, v)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// writeEDN covers the shapes sift's CLI actually prints: maps, vectors,
// strings, numbers, booleans, nil. Structs go through JSON first so json
// tags decide the keyword names.
func writeEDN(w io.Writer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var x any
	if err := json.Unmarshal(b, &x); err != nil {
		return err
	}
	var buf bytes.Buffer
	ednValue(&buf, x)
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}

func ednValue(buf *bytes.Buffer, v any) {
	switch t := v.(type) {
	case nil:
		buf.WriteString("nil")
	case bool:
		buf.WriteString(strconv.FormatBool(t))
	case string:
		buf.WriteString(strconv.Quote(t))
	case float64:
		// JSON numbers arrive as float64; print integral values as ints.
		if float64(int64(t)) == t {
			buf.WriteString(strconv.FormatInt(int64(t), 10))
		} else {
			buf.WriteString(strconv.FormatFloat(t, 'f', -1, 64))
		}
	case []any:
		buf.WriteByte('[')
		for i, it := range t {
			if i > 0 {
				buf.WriteByte(' ')
			}
			ednValue(buf, it)
		}
		buf.WriteByte(']')
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		buf.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(' ')
			}
			buf.WriteByte(':')
			buf.WriteString(k)
			buf.WriteByte(' ')
			ednValue(buf, t[k])
		}
		buf.WriteByte('}')
	default:
		buf.WriteString(strconv.Quote(fmt.Sprintf("%v", v)))
	}
}
