package jsonedit

import (
	"encoding/json"

	gyaml "github.com/goccy/go-yaml"
)

// RowType tags the shape of a value as displayed in a node row.
type RowType string

const (
	TypeObject  RowType = "object"
	TypeArray   RowType = "array"
	TypeString  RowType = "string"
	TypeNumber  RowType = "number"
	TypeBoolean RowType = "boolean"
	TypeNull    RowType = "null"
)

// IsKeyedContainer reports whether v is a plain keyed container: non-null,
// not a sequence, mapping string keys to values. Only keyed containers are
// merge targets; sequences are always replaced wholesale.
func IsKeyedContainer(v interface{}) bool {
	switch v.(type) {
	case gyaml.MapSlice, map[string]interface{}:
		return true
	default:
		return false
	}
}

// IsSequence reports whether v is an ordered sequence.
func IsSequence(v interface{}) bool {
	_, ok := v.([]interface{})
	return ok
}

// TypeOf classifies a value into its row type tag.
func TypeOf(v interface{}) RowType {
	switch v.(type) {
	case nil:
		return TypeNull
	case bool:
		return TypeBoolean
	case int, int64, uint64, float64, json.Number:
		return TypeNumber
	case string:
		return TypeString
	case []interface{}:
		return TypeArray
	default:
		return TypeObject
	}
}

// IsLeaf reports whether t is a scalar row type.
func (t RowType) IsLeaf() bool {
	return t != TypeObject && t != TypeArray
}
