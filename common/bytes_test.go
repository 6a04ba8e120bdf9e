package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliceToBytes(t *testing.T) {
	assert.Nil(t, SliceToBytes[float32](nil))

	floats := []float32{1, 2, 3}
	b := SliceToBytes(floats)
	assert.Len(t, b, 12)

	// 1.0 as little-endian IEEE 754 is 0x3f800000.
	assert.Equal(t, []byte{0, 0, 0x80, 0x3f}, b[:4])

	shorts := []uint16{1, 2}
	assert.Len(t, SliceToBytes(shorts), 4)
}

func TestStructToBytes(t *testing.T) {
	v := struct{ A, B float32 }{1, 2}
	b := StructToBytes(&v)
	assert.Len(t, b, 8)
}

func TestHashStringStable(t *testing.T) {
	assert.Equal(t, HashString("phong"), HashString("phong"))
	assert.NotEqual(t, HashString("phong"), HashString("lambert"))
	// FNV-1a offset basis for the empty string.
	assert.Equal(t, uint64(0xcbf29ce484222325), HashString(""))
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, 3, Coalesce(0, 3, 5))
	assert.Equal(t, "", Coalesce("", ""))
	assert.Equal(t, "a", Coalesce("a", "b"))
}
