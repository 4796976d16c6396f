package jsonedit

import gyaml "github.com/goccy/go-yaml"

// Decision says how a submitted value is combined with the value currently
// at the target path.
type Decision int

const (
	// Replace swaps the whole subtree for the new value.
	Replace Decision = iota
	// Merge shallow-merges the new container's keys into the existing one.
	Merge
)

func (d Decision) String() string {
	if d == Merge {
		return "merge"
	}
	return "replace"
}

// Decide returns Merge iff both the original value at the path and the newly
// parsed value are keyed containers. Scalars, sequences, and shape mismatches
// are always replaced: a shallow key-union has no meaning for them, while for
// two containers it protects sibling keys the user never touched.
func Decide(original, parsed interface{}) Decision {
	if IsKeyedContainer(original) && IsKeyedContainer(parsed) {
		return Merge
	}
	return Replace
}

// ApplyMerge overwrites original's keys with parsed's, key by key, keeping
// original's key order and appending keys it did not have. Keys absent from
// parsed are left alone — a merge never deletes. Nested containers replace
// their counterparts wholesale; this is a shallow merge by contract.
//
// The updated mapping is returned; appending new keys can regrow the slice.
func ApplyMerge(original, parsed gyaml.MapSlice) gyaml.MapSlice {
	for _, it := range parsed {
		original = setMapValue(original, keyString(it.Key), it.Value)
	}
	return original
}

// mergeValues applies Decide + ApplyMerge to arbitrary values, folding
// unordered map forms into the ordered one first.
func mergeValues(original, parsed interface{}) interface{} {
	if Decide(original, parsed) == Replace {
		return parsed
	}
	return ApplyMerge(toMapSlice(original), toMapSlice(parsed))
}

func toMapSlice(v interface{}) gyaml.MapSlice {
	switch t := v.(type) {
	case gyaml.MapSlice:
		return t
	case map[string]interface{}:
		out := make(gyaml.MapSlice, 0, len(t))
		for k, e := range t {
			out = append(out, gyaml.MapItem{Key: k, Value: e})
		}
		return out
	default:
		return nil
	}
}
