// Package pagination computes page numbering for the post listing.
//
// Numbering is inverted relative to chronology: the highest page number holds
// the newest posts and is served from the site root, page 1 holds the oldest.
// Everything here is pure arithmetic with no I/O.
package pagination

import (
	"fmt"
	"strconv"

	bserrors "github.com/usmansaleem/blog-static-generator/internal/errors"
)

const (
	// DefaultPageSize is the number of posts on a listing page.
	DefaultPageSize = 10
	// DefaultDelta is how many page links are shown on each side of the current page.
	DefaultDelta = 2

	rootURL = "/"
)

// Page is the navigation view of one listing page.
type Page struct {
	Number     int
	TotalPages int
	TotalPosts int

	// Start and End bound the page's posts in the newest-first list: [Start, End).
	Start int
	End   int

	HasPrevPage bool // a newer page exists (higher number)
	HasNextPage bool // an older page exists (lower number)
	PrevPageURL string
	NextPageURL string
}

// WindowEntry is one item of the windowed page list. It is either a numbered
// link, the current page marker (a numbered link with IsCurrent set) or an
// ellipsis.
type WindowEntry struct {
	Number     int
	URL        string
	IsCurrent  bool
	IsEllipsis bool
}

// TotalPages returns ceil(n/size).
func TotalPages(n, size int) (int, error) {
	if n < 0 {
		return 0, bserrors.InvalidArgument("post count must not be negative").
			WithContext("count", n).Build()
	}
	if size <= 0 {
		return 0, bserrors.InvalidArgument("page size must be positive").
			WithContext("size", size).Build()
	}
	return (n + size - 1) / size, nil
}

// Plan computes slice bounds and navigation for page p of the listing over n
// posts with the given page size.
func Plan(n, size, p int) (Page, error) {
	total, err := TotalPages(n, size)
	if err != nil {
		return Page{}, err
	}
	if p < 1 || p > total {
		return Page{}, bserrors.InvalidArgument(fmt.Sprintf("page %d out of range 1..%d", p, total)).
			WithContext("page", p).
			WithContext("total", total).
			Build()
	}

	reversed := total - p + 1
	start := (reversed - 1) * size
	end := min(reversed*size, n)

	return Page{
		Number:      p,
		TotalPages:  total,
		TotalPosts:  n,
		Start:       start,
		End:         end,
		HasPrevPage: p < total,
		HasNextPage: p > 1,
		PrevPageURL: PageURL(p+1, total),
		NextPageURL: numberedURL(p - 1),
	}, nil
}

// Window returns the page links to show for current, in descending order.
// It always contains total and 1, every page within delta of current, and a
// single ellipsis on each side of that range when the boundary page is not
// adjacent to it. A negative total or delta is an InvalidArgument error.
func Window(current, total, delta int) ([]WindowEntry, error) {
	if total < 0 {
		return nil, bserrors.InvalidArgument("total pages must not be negative").
			WithContext("total", total).Build()
	}
	if delta < 0 {
		return nil, bserrors.InvalidArgument("window delta must not be negative").
			WithContext("delta", delta).Build()
	}

	entries := []WindowEntry{}
	for i := total; i >= 1; i-- {
		switch {
		case i == total || i == 1 || (i >= current-delta && i <= current+delta):
			entries = append(entries, WindowEntry{
				Number:    i,
				URL:       PageURL(i, total),
				IsCurrent: i == current,
			})
		case (i == current+delta+1 && i < total) || (i == current-delta-1 && i > 1):
			entries = append(entries, WindowEntry{IsEllipsis: true})
		}
	}
	return entries, nil
}

// PageURL returns the site-relative URL of page p.
func PageURL(p, total int) string {
	if p == total {
		return rootURL
	}
	return numberedURL(p)
}

// OutputPath returns the slash-separated file path of page p relative to the
// output root.
func OutputPath(p, total int) string {
	if p == total {
		return "index.html"
	}
	return "page/" + strconv.Itoa(p) + "/index.html"
}

func numberedURL(p int) string {
	return "/page/" + strconv.Itoa(p) + "/"
}
