package content

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-cms/internal/domain"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		limit int
		total int
		want  PageInfo
	}{
		{
			name: "last partial page", page: 3, limit: 10, total: 25,
			want: PageInfo{CurrentPage: 3, Limit: 10, Offset: 20, Total: 25, TotalPages: 3, HasNext: false, HasPrev: true},
		},
		{
			name: "empty listing", page: 1, limit: 10, total: 0,
			want: PageInfo{CurrentPage: 1, Limit: 10, Offset: 0, Total: 0, TotalPages: 1, HasNext: false, HasPrev: false},
		},
		{
			name: "first of many", page: 1, limit: 10, total: 25,
			want: PageInfo{CurrentPage: 1, Limit: 10, Offset: 0, Total: 25, TotalPages: 3, HasNext: true, HasPrev: false},
		},
		{
			name: "exact multiple", page: 2, limit: 5, total: 10,
			want: PageInfo{CurrentPage: 2, Limit: 5, Offset: 5, Total: 10, TotalPages: 2, HasNext: false, HasPrev: true},
		},
		{
			name: "zero page clamps to first", page: 0, limit: 10, total: 3,
			want: PageInfo{CurrentPage: 1, Limit: 10, Offset: 0, Total: 3, TotalPages: 1, HasNext: false, HasPrev: false},
		},
		{
			name: "negative page clamps to first", page: -4, limit: 2, total: 3,
			want: PageInfo{CurrentPage: 1, Limit: 2, Offset: 0, Total: 3, TotalPages: 2, HasNext: true, HasPrev: false},
		},
		{
			name: "page past the end", page: 9, limit: 10, total: 25,
			want: PageInfo{CurrentPage: 9, Limit: 10, Offset: 80, Total: 25, TotalPages: 3, HasNext: false, HasPrev: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Paginate(tt.page, tt.limit, tt.total)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPaginate_HugePages(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		limit int
		total int
	}{
		{"near max int", 922337203685477581, 10, 5},
		{"would wrap the offset negative", math.MaxInt / 5, 10, 5},
		{"max int", math.MaxInt, 100, 1000},
		{"max int with unit limit", math.MaxInt, 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Paginate(tt.page, tt.limit, tt.total)
			require.NoError(t, err)
			assert.False(t, got.HasNext)
			assert.True(t, got.HasPrev)
			assert.GreaterOrEqual(t, got.Offset, 0)
			assert.GreaterOrEqual(t, got.Offset, tt.total)
			assert.LessOrEqual(t, got.CurrentPage, MaxPage(tt.limit))
		})
	}
}

func TestPaginate_InvalidLimit(t *testing.T) {
	for _, limit := range []int{0, -1, -100} {
		_, err := Paginate(1, limit, 10)
		assert.ErrorIs(t, err, domain.ErrInvalidLimit, "limit %d", limit)
	}
}

func TestPaginate_Idempotent(t *testing.T) {
	a, errA := Paginate(4, 7, 100)
	b, errB := Paginate(4, 7, 100)
	require.NoError(t, errA)
	require.NoError(t, errB)
	assert.Equal(t, a, b)
}

func TestParsePageParams(t *testing.T) {
	tests := []struct {
		name    string
		page    string
		limit   string
		want    PageParams
		wantErr error
	}{
		{name: "defaults", want: PageParams{Page: 1, Limit: 10}},
		{name: "explicit values", page: "3", limit: "25", want: PageParams{Page: 3, Limit: 25}},
		{name: "garbage page falls back", page: "abc", want: PageParams{Page: 1, Limit: 10}},
		{name: "zero page falls back", page: "0", want: PageParams{Page: 1, Limit: 10}},
		{name: "limit above max is clamped", limit: "500", want: PageParams{Page: 1, Limit: 100}},
		{name: "zero limit rejected", limit: "0", wantErr: domain.ErrInvalidLimit},
		{name: "negative limit rejected", limit: "-5", wantErr: domain.ErrInvalidLimit},
		{name: "non-numeric limit rejected", limit: "ten", wantErr: domain.ErrInvalidLimit},
		{name: "huge page is capped", page: "922337203685477581", limit: "10", want: PageParams{Page: math.MaxInt / 10, Limit: 10}},
		{name: "page beyond int range is capped", page: "99999999999999999999999", limit: "10", want: PageParams{Page: math.MaxInt / 10, Limit: 10}},
		{name: "negative page beyond int range falls back", page: "-99999999999999999999999", want: PageParams{Page: 1, Limit: 10}},
		{name: "max int page is capped", page: strconv.Itoa(math.MaxInt), limit: "100", want: PageParams{Page: math.MaxInt / 100, Limit: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePageParams(tt.page, tt.limit, 10, 100)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
