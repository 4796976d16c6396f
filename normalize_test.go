package jsonedit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNormalizeEmptyRows(t *testing.T) {
	assert.Equal(t, "{}", NormalizeRows(nil))
	assert.Equal(t, "{}", NormalizeRows([]NodeRow{}))
}

func TestNormalizeBareScalarRow(t *testing.T) {
	assert.Equal(t, "5", NormalizeRows([]NodeRow{{Value: int64(5), Type: TypeNumber}}))
	assert.Equal(t, "true", NormalizeRows([]NodeRow{{Value: true, Type: TypeBoolean}}))
	assert.Equal(t, "null", NormalizeRows([]NodeRow{{Value: nil, Type: TypeNull}}))
	// String leaves show their raw text, unquoted.
	assert.Equal(t, "hello", NormalizeRows([]NodeRow{{Value: "hello", Type: TypeString}}))
}

func TestNormalizeSkipsContainerRows(t *testing.T) {
	rows := []NodeRow{
		{Key: strPtr("a"), Value: int64(1), Type: TypeNumber},
		{Key: strPtr("b"), Value: []interface{}{}, Type: TypeArray},
	}
	assert.Equal(t, "{\n  \"a\": 1\n}", NormalizeRows(rows))
}

func TestNormalizeCollectsScalarRows(t *testing.T) {
	rows := []NodeRow{
		{Key: strPtr("name"), Value: "svc", Type: TypeString},
		{Key: strPtr("port"), Value: int64(8080), Type: TypeNumber},
		{Key: strPtr("meta"), Value: mustParseValue(t, `{"x": 1}`), Type: TypeObject},
		{Value: "keyless, skipped", Type: TypeString},
		{Key: strPtr("on"), Value: false, Type: TypeBoolean},
	}
	assert.Equal(t,
		"{\n  \"name\": \"svc\",\n  \"port\": 8080,\n  \"on\": false\n}",
		NormalizeRows(rows))
}

func TestRowsForValueScalar(t *testing.T) {
	rows := RowsForValue("leaf")
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].Key)
	assert.Equal(t, TypeString, rows[0].Type)
	assert.Equal(t, "leaf", rows[0].Value)
}

func TestRowsForValueContainer(t *testing.T) {
	rows := RowsForValue(mustParseValue(t, `{"a": 1, "b": [2], "c": "x"}`))
	require.Len(t, rows, 3)
	assert.Equal(t, "a", *rows[0].Key)
	assert.Equal(t, TypeNumber, rows[0].Type)
	assert.Equal(t, TypeArray, rows[1].Type)
	assert.Equal(t, TypeString, rows[2].Type)

	node := &SelectedNode{Rows: rows}
	assert.True(t, node.HasComplexChild())
}

func TestRowsForValueRoundTripThroughNormalize(t *testing.T) {
	// A flat scalar object normalizes back to itself.
	src := `{"a": 1, "b": "x"}`
	rows := RowsForValue(mustParseValue(t, src))
	node := &SelectedNode{Rows: rows}
	assert.False(t, node.HasComplexChild())
	assert.Equal(t, "{\n  \"a\": 1,\n  \"b\": \"x\"\n}", NormalizeRows(rows))
}
