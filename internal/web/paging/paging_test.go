package paging_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"devil2devil.org/economy-web/internal/web/paging"
)

func TestPaginateBasics(t *testing.T) {
	t.Parallel()

	p := paging.Paginate(14, paging.StorePageSize, 1)
	require.Equal(t, 1, p.Number)
	require.Equal(t, 3, p.TotalPages)
	require.Equal(t, 0, p.Start)
	require.Equal(t, 6, p.End)
	require.False(t, p.HasPrev())
	require.True(t, p.HasNext())

	p = paging.Paginate(14, paging.StorePageSize, 3)
	require.Equal(t, 12, p.Start)
	require.Equal(t, 14, p.End)
	require.True(t, p.HasPrev())
	require.False(t, p.HasNext())
}

func TestPaginateEmptyListYieldsOnePage(t *testing.T) {
	t.Parallel()

	p := paging.Paginate(0, paging.StorePageSize, 1)
	require.Equal(t, 1, p.Number)
	require.Equal(t, 1, p.TotalPages)
	require.Equal(t, 0, p.Start)
	require.Equal(t, 0, p.End)
	require.False(t, p.HasPrev())
	require.False(t, p.HasNext())
}

func TestPaginateClampsOutOfRange(t *testing.T) {
	t.Parallel()

	// Past the last page clamps down.
	p := paging.Paginate(7, paging.StorePageSize, 9)
	require.Equal(t, 2, p.Number)
	require.Equal(t, 2, p.TotalPages)
	require.Equal(t, 6, p.Start)
	require.Equal(t, 7, p.End)

	// Below the first page clamps up.
	p = paging.Paginate(7, paging.StorePageSize, 0)
	require.Equal(t, 1, p.Number)
	p = paging.Paginate(7, paging.StorePageSize, -4)
	require.Equal(t, 1, p.Number)
}

func TestPaginateExactMultiple(t *testing.T) {
	t.Parallel()

	p := paging.Paginate(12, paging.StorePageSize, 2)
	require.Equal(t, 2, p.TotalPages)
	require.Equal(t, 6, p.Start)
	require.Equal(t, 12, p.End)
}

func TestWindow(t *testing.T) {
	t.Parallel()

	cases := []struct {
		current, pages int
		want           []int
	}{
		{1, 1, []int{1}},
		{2, 4, []int{1, 2, 3, 4}},
		{3, 5, []int{1, 2, 3, 4, 5}},
		{1, 9, []int{1, 2, 3, 4, 5}},
		{3, 9, []int{1, 2, 3, 4, 5}},
		{4, 9, []int{2, 3, 4, 5, 6}},
		{5, 9, []int{3, 4, 5, 6, 7}},
		{7, 9, []int{5, 6, 7, 8, 9}},
		{9, 9, []int{5, 6, 7, 8, 9}},
	}
	for _, tc := range cases {
		got := paging.Window(tc.current, tc.pages)
		require.Equal(t, tc.want, got, "current=%d pages=%d", tc.current, tc.pages)
	}

	require.Nil(t, paging.Window(1, 0))
}
