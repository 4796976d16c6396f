package jsonedit

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	gyaml "github.com/goccy/go-yaml"
)

// Segment is one step of a Path: either a sequence index or an object key.
type Segment struct {
	Key     string
	Index   int
	IsIndex bool
}

// Key makes an object-key segment.
func Key(k string) Segment { return Segment{Key: k} }

// Index makes a sequence-index segment.
func Index(i int) Segment { return Segment{Index: i, IsIndex: true} }

// Path addresses a subtree of a JSON document. The empty path is the root.
type Path []Segment

// String renders the path in canonical bracket notation: "$" for the root,
// otherwise "$" followed by one bracket group per segment. Keys are
// double-quoted (JSON escaping), indices are bare decimal.
func (p Path) String() string {
	if len(p) == 0 {
		return "$"
	}
	var b strings.Builder
	b.WriteByte('$')
	for _, seg := range p {
		b.WriteByte('[')
		if seg.IsIndex {
			b.WriteString(strconv.Itoa(seg.Index))
		} else {
			q, _ := json.Marshal(seg.Key)
			b.Write(q)
		}
		b.WriteByte(']')
	}
	return b.String()
}

// ParsePath reads the bracket notation emitted by Path.String. It accepts
// exactly that grammar, so format/parse round-trips are stable.
func ParsePath(s string) (Path, error) {
	if len(s) == 0 || s[0] != '$' {
		return nil, fmt.Errorf("jsonedit: path %q must start with '$'", s)
	}
	rest := s[1:]
	var p Path
	for len(rest) > 0 {
		if rest[0] != '[' {
			return nil, fmt.Errorf("jsonedit: expected '[' at %q", rest)
		}
		rest = rest[1:]
		if len(rest) == 0 {
			return nil, fmt.Errorf("jsonedit: unterminated segment in %q", s)
		}
		if rest[0] == '"' {
			end := quotedEnd(rest)
			if end < 0 {
				return nil, fmt.Errorf("jsonedit: unterminated string segment in %q", s)
			}
			var key string
			if err := json.Unmarshal([]byte(rest[:end+1]), &key); err != nil {
				return nil, fmt.Errorf("jsonedit: bad string segment in %q: %w", s, err)
			}
			rest = rest[end+1:]
			if len(rest) == 0 || rest[0] != ']' {
				return nil, fmt.Errorf("jsonedit: expected ']' in %q", s)
			}
			rest = rest[1:]
			p = append(p, Key(key))
			continue
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return nil, fmt.Errorf("jsonedit: expected ']' in %q", s)
		}
		idx, err := strconv.Atoi(rest[:end])
		if err != nil || idx < 0 {
			return nil, fmt.Errorf("jsonedit: bad index segment %q", rest[:end])
		}
		rest = rest[end+1:]
		p = append(p, Index(idx))
	}
	return p, nil
}

// quotedEnd returns the offset of the closing quote of a JSON string literal
// starting at s[0] == '"', honoring backslash escapes, or -1.
func quotedEnd(s string) int {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}
	return -1
}

// Read walks path starting at root and returns the value it addresses.
// The second result is false when the path is missing: a nil value is hit
// before the segments are consumed, a key is absent, an index is out of
// range, or a segment does not match the shape it lands on.
func Read(root interface{}, path Path) (interface{}, bool) {
	cur := root
	for _, seg := range path {
		if cur == nil {
			return nil, false
		}
		if seg.IsIndex {
			arr, ok := cur.([]interface{})
			if !ok || seg.Index < 0 || seg.Index >= len(arr) {
				return nil, false
			}
			cur = arr[seg.Index]
			continue
		}
		switch m := cur.(type) {
		case gyaml.MapSlice:
			v, found := mapValue(m, seg.Key)
			if !found {
				return nil, false
			}
			cur = v
		case map[string]interface{}:
			v, found := m[seg.Key]
			if !found {
				return nil, false
			}
			cur = v
		default:
			return nil, false
		}
	}
	return cur, true
}

// Write sets value at path under root, creating missing intermediate
// containers along the way: an index segment materializes a sequence (padded
// with nulls up to the index), a key segment materializes a keyed container.
// An intermediate value of the wrong shape is replaced by a fresh container —
// intentional, since paths are derived from the document being written.
//
// The updated root is returned and must be used in place of the input: the
// ordered containers are slice values, so growth can move them. An empty path
// returns value itself (whole-root replacement).
func Write(root interface{}, path Path, value interface{}) interface{} {
	if len(path) == 0 {
		return value
	}
	return writeSeg(root, path, value)
}

func writeSeg(cur interface{}, path Path, value interface{}) interface{} {
	seg := path[0]
	if seg.IsIndex {
		arr, ok := cur.([]interface{})
		if !ok {
			arr = []interface{}{}
		}
		for len(arr) <= seg.Index {
			arr = append(arr, nil)
		}
		if len(path) == 1 {
			arr[seg.Index] = value
		} else {
			arr[seg.Index] = writeSeg(arr[seg.Index], path[1:], value)
		}
		return arr
	}
	ms, ok := cur.(gyaml.MapSlice)
	if !ok {
		if m, isMap := cur.(map[string]interface{}); isMap {
			// Fold unordered maps into the ordered form before editing.
			for k, v := range m {
				ms = append(ms, gyaml.MapItem{Key: k, Value: v})
			}
		} else {
			ms = gyaml.MapSlice{}
		}
	}
	if len(path) == 1 {
		return setMapValue(ms, seg.Key, value)
	}
	child, _ := mapValue(ms, seg.Key)
	return setMapValue(ms, seg.Key, writeSeg(child, path[1:], value))
}
