package pagination

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bserrors "github.com/usmansaleem/blog-static-generator/internal/errors"
)

func TestTotalPages(t *testing.T) {
	cases := []struct {
		n, size, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{9, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{125, 10, 13},
		{130, 10, 13},
		{7, 1, 7},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("n=%d,size=%d", tc.n, tc.size), func(t *testing.T) {
			got, err := TotalPages(tc.n, tc.size)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestInvalidArguments(t *testing.T) {
	_, err := TotalPages(-1, 10)
	assert.True(t, bserrors.HasCategory(err, bserrors.CategoryInvalidArgument))

	_, err = TotalPages(5, 0)
	assert.True(t, bserrors.HasCategory(err, bserrors.CategoryInvalidArgument))

	_, err = Plan(5, -3, 1)
	assert.True(t, bserrors.HasCategory(err, bserrors.CategoryInvalidArgument))

	_, err = Plan(25, 10, 0)
	assert.True(t, bserrors.HasCategory(err, bserrors.CategoryInvalidArgument))

	_, err = Plan(25, 10, 4)
	assert.True(t, bserrors.HasCategory(err, bserrors.CategoryInvalidArgument))

	_, err = Plan(0, 10, 1)
	assert.True(t, bserrors.HasCategory(err, bserrors.CategoryInvalidArgument), "no pages exist for an empty listing")
}

// Every post index must land on exactly one page, and the highest page must
// hold the newest posts.
func TestPlanCoversAllPosts(t *testing.T) {
	for _, size := range []int{1, 3, 10} {
		for n := 0; n <= 35; n++ {
			total, err := TotalPages(n, size)
			require.NoError(t, err)

			seen := make([]int, n)
			for p := 1; p <= total; p++ {
				page, err := Plan(n, size, p)
				require.NoError(t, err)
				require.LessOrEqual(t, page.Start, page.End)
				require.LessOrEqual(t, page.End-page.Start, size)
				for i := page.Start; i < page.End; i++ {
					seen[i]++
				}
			}
			for i, c := range seen {
				require.Equalf(t, 1, c, "n=%d size=%d index %d seen %d times", n, size, i, c)
			}

			if total > 0 {
				newest, err := Plan(n, size, total)
				require.NoError(t, err)
				assert.Equal(t, 0, newest.Start)
				assert.Equal(t, min(size, n), newest.End)

				oldest, err := Plan(n, size, 1)
				require.NoError(t, err)
				assert.Equal(t, n, oldest.End)
			}
		}
	}
}

func TestPlanNavigation(t *testing.T) {
	const n, size = 125, 10 // 13 pages, page 1 holds 5 posts

	top, err := Plan(n, size, 13)
	require.NoError(t, err)
	assert.False(t, top.HasPrevPage)
	assert.True(t, top.HasNextPage)
	assert.Equal(t, "/page/12/", top.NextPageURL)
	assert.Equal(t, 0, top.Start)
	assert.Equal(t, 10, top.End)

	second, err := Plan(n, size, 12)
	require.NoError(t, err)
	assert.True(t, second.HasPrevPage)
	assert.True(t, second.HasNextPage)
	assert.Equal(t, "/", second.PrevPageURL)
	assert.Equal(t, "/page/11/", second.NextPageURL)

	middle, err := Plan(n, size, 7)
	require.NoError(t, err)
	assert.True(t, middle.HasPrevPage)
	assert.True(t, middle.HasNextPage)
	assert.Equal(t, "/page/8/", middle.PrevPageURL)
	assert.Equal(t, "/page/6/", middle.NextPageURL)
	assert.Equal(t, 60, middle.Start)
	assert.Equal(t, 70, middle.End)

	last, err := Plan(n, size, 1)
	require.NoError(t, err)
	assert.True(t, last.HasPrevPage)
	assert.False(t, last.HasNextPage)
	assert.Equal(t, "/page/2/", last.PrevPageURL)
	assert.Equal(t, 120, last.Start)
	assert.Equal(t, 125, last.End)
	assert.Equal(t, 13, last.TotalPages)
	assert.Equal(t, 125, last.TotalPosts)
}

func TestPlanSinglePage(t *testing.T) {
	page, err := Plan(10, 10, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, page.TotalPages)
	assert.False(t, page.HasPrevPage)
	assert.False(t, page.HasNextPage)
	assert.Equal(t, "index.html", OutputPath(1, 1))

	window, err := Window(1, 1, DefaultDelta)
	require.NoError(t, err)
	require.Len(t, window, 1)
	assert.Equal(t, WindowEntry{Number: 1, URL: "/", IsCurrent: true}, window[0])
}

// render turns a window into a compact string such as "13 … [7] … 1".
func render(entries []WindowEntry) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		switch {
		case e.IsEllipsis:
			parts = append(parts, "…")
		case e.IsCurrent:
			parts = append(parts, fmt.Sprintf("[%d]", e.Number))
		default:
			parts = append(parts, fmt.Sprint(e.Number))
		}
	}
	return strings.Join(parts, " ")
}

func TestWindow(t *testing.T) {
	cases := []struct {
		current, total int
		want           string
	}{
		{7, 13, "13 … 9 8 [7] 6 5 … 1"},
		{13, 13, "[13] 12 11 … 1"},
		{12, 13, "13 [12] 11 10 … 1"},
		{1, 13, "13 … 3 2 [1]"},
		{4, 13, "13 … 6 5 [4] 3 2 1"},
		{10, 13, "13 12 11 [10] 9 8 … 1"},
		{5, 13, "13 … 7 6 [5] 4 3 … 1"},
		{2, 3, "3 [2] 1"},
		{1, 2, "2 [1]"},
		{3, 6, "6 5 4 [3] 2 1"},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%d_of_%d", tc.current, tc.total), func(t *testing.T) {
			window, err := Window(tc.current, tc.total, DefaultDelta)
			require.NoError(t, err)
			assert.Equal(t, tc.want, render(window))
		})
	}
}

func TestWindowURLs(t *testing.T) {
	window, err := Window(7, 13, DefaultDelta)
	require.NoError(t, err)
	require.NotEmpty(t, window)

	assert.Equal(t, "/", window[0].URL)
	assert.Equal(t, 13, window[0].Number)
	for _, e := range window[1:] {
		if e.IsEllipsis {
			assert.Empty(t, e.URL)
			continue
		}
		assert.Equal(t, fmt.Sprintf("/page/%d/", e.Number), e.URL)
	}
}

func TestWindowEmpty(t *testing.T) {
	window, err := Window(0, 0, DefaultDelta)
	require.NoError(t, err)
	assert.Empty(t, window)
}

func TestWindowZeroDelta(t *testing.T) {
	window, err := Window(7, 13, 0)
	require.NoError(t, err)
	assert.Equal(t, "13 … [7] … 1", render(window))
}

func TestWindowRejectsNegativeArguments(t *testing.T) {
	_, err := Window(3, 5, -3)
	assert.True(t, bserrors.HasCategory(err, bserrors.CategoryInvalidArgument))

	_, err = Window(1, -1, DefaultDelta)
	assert.True(t, bserrors.HasCategory(err, bserrors.CategoryInvalidArgument))
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, "index.html", OutputPath(13, 13))
	assert.Equal(t, "page/12/index.html", OutputPath(12, 13))
	assert.Equal(t, "page/1/index.html", OutputPath(1, 13))
}
