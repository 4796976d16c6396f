package jsonedit

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	gyaml "github.com/goccy/go-yaml"
)

// ParseValue decodes strict JSON into an insertion-ordered value tree:
// objects become gyaml.MapSlice, arrays []interface{}, and scalars the usual
// Go kinds (nil, bool, int64, float64, string).
//
// Validity is checked with encoding/json first: the ordered decoder is a YAML
// decoder underneath and would happily accept bare words (`hello`) or
// unquoted keys, which must NOT count as parseable JSON here.
func ParseValue(data []byte) (interface{}, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("jsonedit: invalid JSON")
	}
	var v interface{}
	if err := gyaml.UnmarshalWithOptions(data, &v, gyaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("jsonedit: decode: %w", err)
	}
	return normalizeValue(v), nil
}

// normalizeValue widens the decoder's scalar zoo to the canonical kinds used
// throughout this package: integers as int64, floats as float64.
func normalizeValue(v interface{}) interface{} {
	switch t := v.(type) {
	case nil, bool, string, int64, float64:
		return t
	case int:
		return int64(t)
	case uint64:
		if t <= math.MaxInt64 {
			return int64(t)
		}
		return float64(t)
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		f, _ := t.Float64()
		return f
	case []interface{}:
		for i, e := range t {
			t[i] = normalizeValue(e)
		}
		return t
	case gyaml.MapSlice:
		for i := range t {
			t[i].Value = normalizeValue(t[i].Value)
		}
		return t
	case map[string]interface{}:
		for k, e := range t {
			t[k] = normalizeValue(e)
		}
		return t
	default:
		return t
	}
}

// CloneValue returns a deep copy of an ordered value tree.
func CloneValue(v interface{}) interface{} {
	switch t := v.(type) {
	case gyaml.MapSlice:
		out := make(gyaml.MapSlice, 0, len(t))
		for _, it := range t {
			out = append(out, gyaml.MapItem{Key: it.Key, Value: CloneValue(it.Value)})
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, e := range t {
			out[i] = CloneValue(e)
		}
		return out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, e := range t {
			out[k] = CloneValue(e)
		}
		return out
	default:
		return t
	}
}

// deepEqual compares two value trees structurally. Numeric values compare by
// magnitude so an int64 and a float64 holding the same number are equal.
func deepEqual(a, b interface{}) bool {
	switch av := a.(type) {
	case gyaml.MapSlice:
		bv, ok := b.(gyaml.MapSlice)
		if !ok || len(av) != len(bv) {
			return false
		}
		for _, it := range av {
			bval, found := mapValue(bv, keyString(it.Key))
			if !found || !deepEqual(it.Value, bval) {
				return false
			}
		}
		return true
	case []interface{}:
		bv, ok := b.([]interface{})
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !deepEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case int64:
		switch bv := b.(type) {
		case int64:
			return av == bv
		case float64:
			return float64(av) == bv
		}
		return false
	case float64:
		switch bv := b.(type) {
		case int64:
			return av == float64(bv)
		case float64:
			return av == bv
		}
		return false
	default:
		return a == b
	}
}

// keyString renders a MapSlice key as its string form. Keys decoded from
// JSON are always strings already.
func keyString(k interface{}) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprint(k)
}

// mapValue looks up key in an ordered mapping.
func mapValue(ms gyaml.MapSlice, key string) (interface{}, bool) {
	for _, it := range ms {
		if keyString(it.Key) == key {
			return it.Value, true
		}
	}
	return nil, false
}

// setMapValue sets key in an ordered mapping, overwriting in place when the
// key exists and appending otherwise. The (possibly regrown) slice is
// returned and must be stored back by the caller.
func setMapValue(ms gyaml.MapSlice, key string, v interface{}) gyaml.MapSlice {
	for i := range ms {
		if keyString(ms[i].Key) == key {
			ms[i].Value = v
			return ms
		}
	}
	return append(ms, gyaml.MapItem{Key: key, Value: v})
}

// scalarString renders a scalar value as its raw display text (no JSON
// quoting for strings). Containers fall back to compact fmt output; callers
// are expected to filter those out first.
func scalarString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case bool:
		if t {
			return "true"
		}
		return "false"
	case string:
		return t
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case json.Number:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
