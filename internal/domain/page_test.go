package domain

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequest_Offset(t *testing.T) {
	assert.Equal(t, 0, PageRequest{Number: 0, Size: 10}.Offset())
	assert.Equal(t, 20, PageRequest{Number: 2, Size: 10}.Offset())
	assert.Equal(t, math.MaxInt, PageRequest{Number: math.MaxInt, Size: 10}.Offset(), "sin desbordar a negativo")
}

func TestPage_TotalPages(t *testing.T) {
	cases := []struct {
		total int64
		size  int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 5, 5},
		{3, 0, 1},
	}
	for _, tc := range cases {
		p := Page[int]{TotalElements: tc.total, Size: tc.size}
		assert.Equal(t, tc.want, p.TotalPages(), "total=%d size=%d", tc.total, tc.size)
	}
}

func TestMapPage(t *testing.T) {
	p := Page[int]{Items: []int{1, 2}, TotalElements: 12, Number: 1, Size: 2}
	out := MapPage(p, strconv.Itoa)

	assert.Equal(t, []string{"1", "2"}, out.Items)
	assert.Equal(t, int64(12), out.TotalElements)
	assert.Equal(t, 1, out.Number)
	assert.Equal(t, 2, out.Size)
}
