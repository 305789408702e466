package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPaginator_Empty(t *testing.T) {
	p := New([]int{}, 10)

	assert.Equal(t, 1, p.TotalPages())
	assert.Equal(t, 0, p.StartIndex())
	assert.Equal(t, 0, p.EndIndex())
	assert.Empty(t, p.Items())
	assert.Equal(t, []int{1}, p.VisiblePages())
}

func TestPaginator_Windows(t *testing.T) {
	p := New(seq(25), 10)

	assert.Equal(t, 3, p.TotalPages())
	assert.Equal(t, seq(10), p.Items())

	p.Next()
	p.Next()
	assert.Equal(t, 3, p.Page())
	assert.Equal(t, []int{21, 22, 23, 24, 25}, p.Items())
	assert.Equal(t, 21, p.StartIndex())
	assert.Equal(t, 25, p.EndIndex())

	p.Next()
	assert.Equal(t, 3, p.Page())

	p.GoTo(99)
	assert.Equal(t, 3, p.Page())
	p.GoTo(1)
	p.Prev()
	assert.Equal(t, 1, p.Page())
}

func TestPaginator_DefaultPerPage(t *testing.T) {
	p := New(seq(120), 0)
	assert.Equal(t, DefaultPerPage, p.PerPage())
	assert.Equal(t, 3, p.TotalPages())
}

func TestPaginator_ResetWhenListShrinks(t *testing.T) {
	p := New(seq(30), 10)
	p.GoTo(3)

	p.SetItems(seq(12))
	assert.Equal(t, 1, p.Page())

	p.GoTo(2)
	p.SetItems(seq(15))
	assert.Equal(t, 2, p.Page())
}

func TestPaginator_VisiblePages(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		current int
		want    []int
	}{
		{"few pages", 3, 2, []int{1, 2, 3}},
		{"near start", 10, 2, []int{1, 2, 3, 4, 5}},
		{"middle", 10, 6, []int{4, 5, 6, 7, 8}},
		{"near end", 10, 9, []int{6, 7, 8, 9, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(seq(tt.total), 1)
			p.GoTo(tt.current)
			assert.Equal(t, tt.want, p.VisiblePages())
		})
	}
}

func TestPaginate(t *testing.T) {
	page := Paginate(seq(7), 2, 3)

	assert.Equal(t, []int{4, 5, 6}, page.Items)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 7, page.TotalItems)
	assert.Equal(t, 4, page.StartIndex)
	assert.Equal(t, 6, page.EndIndex)
}
