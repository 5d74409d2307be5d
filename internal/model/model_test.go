package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPostDate(t *testing.T) {
	created := time.Date(2019, time.March, 5, 14, 30, 0, 0, time.UTC)
	d := NewPostDate(created)

	assert.Equal(t, PostDate{Weekday: "Tuesday", Day: "5", Month: "March", Year: "2019"}, d)
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2019-03-05", time.Date(2019, 3, 5, 0, 0, 0, 0, time.UTC)},
		{"2019-03-05T10:11:12", time.Date(2019, 3, 5, 10, 11, 12, 0, time.UTC)},
		{"2019-03-05 10:11:12", time.Date(2019, 3, 5, 10, 11, 12, 0, time.UTC)},
		{"2019-03-05T10:11:12Z", time.Date(2019, 3, 5, 10, 11, 12, 0, time.UTC)},
		{"2019-03-05T10:11:12.5Z", time.Date(2019, 3, 5, 10, 11, 12, 500000000, time.UTC)},
		{"2019-03-05T10:11:12.000+0000", time.Date(2019, 3, 5, 10, 11, 12, 0, time.UTC)},
		{"2019-03-05T10:11:12+0100", time.Date(2019, 3, 5, 9, 11, 12, 0, time.UTC)},
		{"2019-03-05T10:11", time.Date(2019, 3, 5, 10, 11, 0, 0, time.UTC)},
		{"2019-03-05 10:11", time.Date(2019, 3, 5, 10, 11, 0, 0, time.UTC)},
		{"2019-03-05T10:11+02:00", time.Date(2019, 3, 5, 8, 11, 0, 0, time.UTC)},
		{"2019-03-05T10:11Z", time.Date(2019, 3, 5, 10, 11, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseDate(tc.in)
			require.True(t, ok)
			assert.True(t, tc.want.Equal(got), "got %s", got)
		})
	}

	_, ok := ParseDate("5th of March")
	assert.False(t, ok)
}

func TestPostCategoryNames(t *testing.T) {
	p := &Post{Categories: []Category{{Name: "go"}, {Name: "blog"}, {Name: "aws"}}}
	assert.Equal(t, []string{"go", "blog", "aws"}, p.CategoryNames())
}

func TestSiteAbsURL(t *testing.T) {
	assert.Equal(t, "/page/2/", SiteData{}.AbsURL("/page/2/"))
	assert.Equal(t, "https://example.com/page/2/", SiteData{BaseURL: "https://example.com/"}.AbsURL("/page/2/"))
}
