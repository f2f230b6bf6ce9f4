package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromQuery_SpringStyleSort(t *testing.T) {
	r := httptest.NewRequest("GET", "/records/feed?page=2&size=5&sort=created_at,desc", nil)

	p := FromQuery(r)

	assert.Equal(t, Request{Page: 2, Size: 5, Sort: "created_at", Desc: true}, p)
	assert.Equal(t, 10, p.Offset())
}

func TestNormalize_Defaults(t *testing.T) {
	p := Request{Page: -1, Size: 1000}.Normalize("category", true)

	assert.Equal(t, 0, p.Page)
	assert.Equal(t, MaxSize, p.Size)
	assert.Equal(t, "category", p.Sort)
	assert.True(t, p.Desc)

	p = Request{}.Normalize("date", false)
	assert.Equal(t, DefaultSize, p.Size)
}

func TestSliceAndNewPage(t *testing.T) {
	all := []int{1, 2, 3, 4, 5}
	req := Request{Page: 1, Size: 2}

	items, total := Slice(all, req)
	page := NewPage(items, req, total)

	assert.Equal(t, []int{3, 4}, page.Items)
	assert.Equal(t, 5, page.TotalElements)
	assert.Equal(t, 3, page.TotalPages)

	items, _ = Slice(all, Request{Page: 9, Size: 2})
	assert.Empty(t, items)
}

func TestMap_KeepsMetadata(t *testing.T) {
	p := NewPage([]int{1, 2}, Request{Page: 0, Size: 2}, 4)

	out := Map(p, func(v int) string { return string(rune('a' + v)) })

	assert.Equal(t, []string{"b", "c"}, out.Items)
	assert.Equal(t, 2, out.TotalPages)
}
