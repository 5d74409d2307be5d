package model

import (
	"strings"
	"time"
)

// Category is a single label attached to a post.
type Category struct {
	Name string `json:"name" yaml:"name"`
}

// Post represents a single blog entry loaded from the content source.
// Posts are not mutated after load, except ModifiedOn.
type Post struct {
	ID          string
	Slug        string
	Title       string
	Description string
	Body        string
	Section     string
	CreatedOn   time.Time
	ModifiedOn  time.Time
	Categories  []Category
}

// CategoryNames returns the category labels in insertion order.
func (p *Post) CategoryNames() []string {
	names := make([]string, len(p.Categories))
	for i, c := range p.Categories {
		names[i] = c.Name
	}
	return names
}

// Touch updates the modification timestamp.
func (p *Post) Touch(t time.Time) {
	p.ModifiedOn = t
}

// SiteData holds site-wide values available to every template.
type SiteData struct {
	Title   string
	BaseURL string
}

// AbsURL joins a site-relative path onto BaseURL.
func (s SiteData) AbsURL(path string) string {
	if s.BaseURL == "" {
		return path
	}
	return strings.TrimSuffix(s.BaseURL, "/") + "/" + strings.TrimPrefix(path, "/")
}
