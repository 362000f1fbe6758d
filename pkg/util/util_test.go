package util

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertList(t *testing.T) {
	t.Parallel()
	got := ConvertList([]int{1, 2, 3}, strconv.Itoa)
	assert.Equal(t, []string{"1", "2", "3"}, got)

	assert.Empty(t, ConvertList(nil, strconv.Itoa))
}

func TestSliceIncludes(t *testing.T) {
	t.Parallel()
	assert.True(t, SliceIncludes([]string{"a", "b"}, "b"))
	assert.False(t, SliceIncludes([]string{"a", "b"}, "c"))
	assert.False(t, SliceIncludes(nil, "a"))
}

func TestPtrVal(t *testing.T) {
	t.Parallel()
	p := Ptr(42)
	assert.Equal(t, 42, *p)
	assert.Equal(t, 42, Val(p))
	assert.Zero(t, Val[int](nil))
}
