package jsonedit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsKeyedContainer(t *testing.T) {
	assert.True(t, IsKeyedContainer(mustParseValue(t, `{"a": 1}`)))
	assert.True(t, IsKeyedContainer(mustParseValue(t, `{}`)))
	assert.True(t, IsKeyedContainer(map[string]interface{}{}))

	assert.False(t, IsKeyedContainer(nil))
	assert.False(t, IsKeyedContainer(mustParseValue(t, `[1]`)))
	assert.False(t, IsKeyedContainer("text"))
	assert.False(t, IsKeyedContainer(int64(3)))
	assert.False(t, IsKeyedContainer(true))
}

func TestIsSequence(t *testing.T) {
	assert.True(t, IsSequence(mustParseValue(t, `[]`)))
	assert.False(t, IsSequence(mustParseValue(t, `{}`)))
	assert.False(t, IsSequence("[]"))
}

func TestTypeOf(t *testing.T) {
	cases := map[string]RowType{
		`null`:     TypeNull,
		`true`:     TypeBoolean,
		`3`:        TypeNumber,
		`3.5`:      TypeNumber,
		`"s"`:      TypeString,
		`[1]`:      TypeArray,
		`{"k": 1}`: TypeObject,
	}
	for src, want := range cases {
		assert.Equal(t, want, TypeOf(mustParseValue(t, src)), "TypeOf(%s)", src)
	}
	assert.True(t, TypeNumber.IsLeaf())
	assert.False(t, TypeArray.IsLeaf())
	assert.False(t, TypeObject.IsLeaf())
}
