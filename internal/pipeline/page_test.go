package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thehamzasani/primeTube/internal/common"
)

func TestNewPage(t *testing.T) {
	tests := []struct {
		name      string
		total     int64
		page      common.Pagination
		wantPages int64
		wantPrev  *int64
		wantNext  *int64
	}{
		{name: "empty", total: 0, page: common.Pagination{Page: 1, Limit: 10}, wantPages: 0},
		{name: "single page", total: 3, page: common.Pagination{Page: 1, Limit: 10}, wantPages: 1},
		{name: "first of many", total: 25, page: common.Pagination{Page: 1, Limit: 10}, wantPages: 3, wantNext: ptr(2)},
		{name: "middle", total: 25, page: common.Pagination{Page: 2, Limit: 10}, wantPages: 3, wantPrev: ptr(1), wantNext: ptr(3)},
		{name: "last", total: 25, page: common.Pagination{Page: 3, Limit: 10}, wantPages: 3, wantPrev: ptr(2)},
		{name: "beyond last", total: 25, page: common.Pagination{Page: 9, Limit: 10}, wantPages: 3, wantPrev: ptr(8)},
		{name: "exact multiple", total: 20, page: common.Pagination{Page: 2, Limit: 10}, wantPages: 2, wantPrev: ptr(1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			page := NewPage[int](nil, tc.total, tc.page)
			require.NotNil(t, page.Docs)
			assert.Equal(t, tc.wantPages, page.TotalPages)
			assert.Equal(t, tc.wantPrev, page.PrevPage)
			assert.Equal(t, tc.wantNext, page.NextPage)
			assert.Equal(t, tc.wantPrev != nil, page.HasPrevPage)
			assert.Equal(t, tc.wantNext != nil, page.HasNextPage)
			assert.Equal(t, tc.total, page.TotalDocs)
		})
	}
}

func TestFromFacet(t *testing.T) {
	res := FacetResult[string]{Docs: []string{"a", "b"}}
	res.Total = append(res.Total, struct {
		Count int64 `bson:"count"`
	}{Count: 12})

	page := FromFacet(res, common.Pagination{Page: 1, Limit: 2})
	assert.Equal(t, []string{"a", "b"}, page.Docs)
	assert.Equal(t, int64(12), page.TotalDocs)
	assert.Equal(t, int64(6), page.TotalPages)

	empty := FromFacet(FacetResult[string]{}, common.Pagination{Page: 1, Limit: 2})
	assert.Equal(t, int64(0), empty.TotalDocs)
	assert.Empty(t, empty.Docs)
}

func ptr(n int64) *int64 { return &n }
