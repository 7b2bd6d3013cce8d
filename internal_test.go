package ipfmt

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntValueWidth(t *testing.T) {
	t.Parallel()
	assert.Equal(t, intValue{bits: 0xFF, width: 1}, Int(uint8(255)))
	assert.Equal(t, intValue{bits: 0x7F000001, width: 4}, Int(uint32(0x7F000001)))
	// Signed inputs sign-extend into the upper octets; width keeps the
	// render masked to the type's own groups.
	assert.Equal(t, intValue{bits: 0xFFFFFFFFFFFFFFFF, width: 2}, Int(int16(-1)))
}

func TestAppendDottedReusesBuffer(t *testing.T) {
	t.Parallel()
	buf := make([]byte, 0, 32)
	buf = Int(uint16(0x0102)).appendDotted(buf)
	assert.Equal(t, "1.2", string(buf))
	buf = Text("x").appendDotted(buf[:0])
	assert.Equal(t, "x", string(buf))
}

func TestAppendElem(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "300", string(appendElem(nil, 300)))
	assert.Equal(t, "abc", string(appendElem(nil, "abc")))
	assert.Equal(t, "[1 2]", string(appendElem(nil, []int{1, 2})))
}

func TestUniformFields(t *testing.T) {
	t.Parallel()
	assert.True(t, uniformFields(reflect.TypeFor[Tuple2[int, int]]()))
	assert.True(t, uniformFields(reflect.TypeFor[Tuple4[string, string, string, string]]()))
	assert.True(t, uniformFields(reflect.TypeFor[struct{ X int }]()), "single field is vacuously uniform")
	assert.False(t, uniformFields(reflect.TypeFor[Tuple2[int, int8]]()))
	assert.False(t, uniformFields(reflect.TypeFor[Tuple4[uint8, uint8, uint8, string]]()))
}

func TestIsListType(t *testing.T) {
	t.Parallel()
	assert.True(t, isListType(reflect.TypeFor[List[int]]()))
	assert.True(t, isListType(reflect.TypeFor[List[[]string]]()))
	assert.False(t, isListType(reflect.TypeFor[listNode[int]]()))
	assert.False(t, isListType(reflect.TypeFor[Tuple2[int, int]]()))

	// A struct merely named List is not an instantiation of ours.
	type List struct{ next *List }
	assert.False(t, isListType(reflect.TypeFor[List]()))
}
