package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	p := Paginate(8, EntitiesPerPage, 1)
	assert.Equal(t, PageInfo{Page: 1, PerPage: 6, TotalItems: 8, TotalPages: 2, Start: 0, End: 6, Window: []int{1, 2}}, p)

	p = Paginate(8, EntitiesPerPage, 2)
	assert.Equal(t, 6, p.Start)
	assert.Equal(t, 8, p.End)

	// out of range pages clamp
	assert.Equal(t, 2, Paginate(8, EntitiesPerPage, 9).Page)
	assert.Equal(t, 1, Paginate(8, EntitiesPerPage, -3).Page)

	empty := Paginate(0, EntitiesPerPage, 1)
	assert.Equal(t, 0, empty.TotalPages)
	assert.Equal(t, 1, empty.Page)
	assert.Equal(t, 0, empty.Start)
	assert.Equal(t, 0, empty.End)
	assert.Empty(t, empty.Window)
}

func TestPageWindow(t *testing.T) {
	cases := []struct {
		total, current int
		want           []int
	}{
		{3, 2, []int{1, 2, 3}},
		{5, 5, []int{1, 2, 3, 4, 5}},
		{10, 1, []int{1, 2, 3, 4, 5}},
		{10, 3, []int{1, 2, 3, 4, 5}},
		{10, 4, []int{2, 3, 4, 5, 6}},
		{10, 7, []int{5, 6, 7, 8, 9}},
		{10, 8, []int{6, 7, 8, 9, 10}},
		{10, 10, []int{6, 7, 8, 9, 10}},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, pageWindow(c.total, c.current), "total=%d current=%d", c.total, c.current)
	}
}

func TestPageOfCopies(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}
	p := Paginate(len(items), 3, 3)
	assert.Equal(t, []int{7}, pageOf(items, p))

	page := pageOf(items, Paginate(len(items), 3, 1))
	page[0] = 100
	assert.Equal(t, 1, items[0])
}
