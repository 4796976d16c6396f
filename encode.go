package jsonedit

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	gyaml "github.com/goccy/go-yaml"
)

const encodeIndent = "  "

// EncodeJSON renders a value tree as pretty-printed JSON with two-space
// indentation and no trailing newline. Ordered containers keep their
// insertion order; the stdlib marshaler cannot do this, which is why the
// container walk is done by hand. Scalars still go through encoding/json so
// string escaping stays correct.
func EncodeJSON(v interface{}) string {
	var b strings.Builder
	encodeValue(&b, v, 0)
	return b.String()
}

func encodeValue(b *strings.Builder, v interface{}, depth int) {
	switch t := v.(type) {
	case nil:
		b.WriteString("null")
	case bool:
		if t {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case string:
		q, _ := json.Marshal(t)
		b.Write(q)
	case int64:
		b.WriteString(strconv.FormatInt(t, 10))
	case int:
		b.WriteString(strconv.Itoa(t))
	case uint64:
		b.WriteString(strconv.FormatUint(t, 10))
	case float64:
		b.WriteString(strconv.FormatFloat(t, 'g', -1, 64))
	case json.Number:
		b.WriteString(t.String())
	case []interface{}:
		if len(t) == 0 {
			b.WriteString("[]")
			return
		}
		b.WriteString("[\n")
		for i, e := range t {
			writeIndent(b, depth+1)
			encodeValue(b, e, depth+1)
			if i < len(t)-1 {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
		}
		writeIndent(b, depth)
		b.WriteByte(']')
	case gyaml.MapSlice:
		encodeItems(b, t, depth)
	case map[string]interface{}:
		// Unordered maps get stable (sorted) output to avoid nondeterminism.
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		ms := make(gyaml.MapSlice, 0, len(t))
		for _, k := range keys {
			ms = append(ms, gyaml.MapItem{Key: k, Value: t[k]})
		}
		encodeItems(b, ms, depth)
	default:
		q, _ := json.Marshal(t)
		b.Write(q)
	}
}

func encodeItems(b *strings.Builder, ms gyaml.MapSlice, depth int) {
	if len(ms) == 0 {
		b.WriteString("{}")
		return
	}
	b.WriteString("{\n")
	for i, it := range ms {
		writeIndent(b, depth+1)
		q, _ := json.Marshal(keyString(it.Key))
		b.Write(q)
		b.WriteString(": ")
		encodeValue(b, it.Value, depth+1)
		if i < len(ms)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	writeIndent(b, depth)
	b.WriteByte('}')
}

func writeIndent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString(encodeIndent)
	}
}
