package jsonedit

import gyaml "github.com/goccy/go-yaml"

// NodeRow is one displayed field of a selected node. A nil Key marks the row
// of a bare scalar leaf; otherwise the row is one immediate child of a keyed
// container (children of containers are not expanded further).
type NodeRow struct {
	Key   *string
	Value interface{}
	Type  RowType
}

// SelectedNode identifies the subtree under edit: where it lives in the
// document and the rows the host view displays for it. Produced externally
// by the graph view; consumed read-only here.
type SelectedNode struct {
	Path Path
	Rows []NodeRow
}

// HasComplexChild reports whether any row is an object or array.
func (n *SelectedNode) HasComplexChild() bool {
	for _, r := range n.Rows {
		if !r.Type.IsLeaf() {
			return true
		}
	}
	return false
}

// NormalizeRows converts a node's row list into its canonical edit text.
//
//   - no rows → "{}"
//   - a single keyless row → the scalar's raw text, unquoted (so editing a
//     string leaf shows the bare text; the engine's scalar fallback makes the
//     reverse trip work)
//   - otherwise → a pretty-printed JSON object of the scalar rows only; rows
//     typed object/array never contribute keys, and keyless rows are skipped
func NormalizeRows(rows []NodeRow) string {
	if len(rows) == 0 {
		return "{}"
	}
	if len(rows) == 1 && rows[0].Key == nil {
		return scalarString(rows[0].Value)
	}
	ms := gyaml.MapSlice{}
	for _, r := range rows {
		if r.Key == nil || !r.Type.IsLeaf() {
			continue
		}
		ms = setMapValue(ms, *r.Key, r.Value)
	}
	return EncodeJSON(ms)
}

// RowsForValue projects a value into the row list a host view would display
// for it: one keyless row for a scalar, or one row per immediate child of a
// container. This is the inverse of the graph view's projection and lets the
// engine be driven without a UI.
func RowsForValue(v interface{}) []NodeRow {
	switch t := v.(type) {
	case gyaml.MapSlice:
		rows := make([]NodeRow, 0, len(t))
		for _, it := range t {
			k := keyString(it.Key)
			rows = append(rows, NodeRow{Key: &k, Value: it.Value, Type: TypeOf(it.Value)})
		}
		return rows
	case map[string]interface{}:
		rows := make([]NodeRow, 0, len(t))
		for k, e := range t {
			key := k
			rows = append(rows, NodeRow{Key: &key, Value: e, Type: TypeOf(e)})
		}
		return rows
	case []interface{}:
		rows := make([]NodeRow, 0, len(t))
		for _, e := range t {
			rows = append(rows, NodeRow{Value: e, Type: TypeOf(e)})
		}
		return rows
	default:
		return []NodeRow{{Value: v, Type: TypeOf(v)}}
	}
}
