package model

import "github.com/usmansaleem/blog-static-generator/internal/pagination"

// PostPageData is the context for the post detail template.
type PostPageData struct {
	Site SiteData
	Post *Post
	Date PostDate
}

// IndexPageData is the context for the listing template.
type IndexPageData struct {
	Site        SiteData
	Posts       []*Post
	CurrentPage int
	TotalPages  int
	PostCount   int
	HasPrevPage bool
	HasNextPage bool
	PrevPageURL string
	NextPageURL string
	Pages       []pagination.WindowEntry
}
