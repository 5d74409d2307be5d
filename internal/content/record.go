package content

import (
	"log/slog"
	"path"
	"strings"

	"github.com/google/uuid"

	bserrors "github.com/usmansaleem/blog-static-generator/internal/errors"
	"github.com/usmansaleem/blog-static-generator/internal/model"
)

// postNamespace seeds name-based IDs for posts that do not carry one.
var postNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:blog-static-generator:post"))

// record is the persisted shape of a post.
type record struct {
	ID            string           `json:"id" yaml:"id"`
	URLFriendlyID string           `json:"urlFriendlyId" yaml:"urlFriendlyId"`
	Title         string           `json:"title" yaml:"title"`
	Description   string           `json:"description" yaml:"description"`
	Body          string           `json:"body" yaml:"body"`
	BlogSection   string           `json:"blogSection" yaml:"blogSection"`
	CreatedOn     string           `json:"createdOn" yaml:"createdOn"`
	ModifiedOn    string           `json:"modifiedOn" yaml:"modifiedOn"`
	Categories    []model.Category `json:"categories" yaml:"categories"`
}

// toPost validates r and converts it. source names the file or entry for error context.
// An unparseable modifiedOn is logged and replaced by createdOn.
func (r record) toPost(source string, logger *slog.Logger) (*model.Post, error) {
	if !validSlug(r.URLFriendlyID) {
		return nil, bserrors.Malformed("post has an invalid urlFriendlyId").
			WithContext("source", source).
			WithContext("slug", r.URLFriendlyID).
			Build()
	}
	created, ok := model.ParseDate(strings.TrimSpace(r.CreatedOn))
	if !ok {
		return nil, bserrors.Malformed("post has an unparseable createdOn").
			WithContext("source", source).
			WithContext("slug", r.URLFriendlyID).
			WithContext("createdOn", r.CreatedOn).
			Build()
	}

	post := &model.Post{
		ID:          r.ID,
		Slug:        r.URLFriendlyID,
		Title:       r.Title,
		Description: r.Description,
		Body:        r.Body,
		Section:     r.BlogSection,
		CreatedOn:   created,
		Categories:  append([]model.Category(nil), r.Categories...),
	}
	if post.ID == "" {
		post.ID = uuid.NewSHA1(postNamespace, []byte(post.Slug)).String()
	}

	modifiedOn := strings.TrimSpace(r.ModifiedOn)
	modified, ok := model.ParseDate(modifiedOn)
	switch {
	case modifiedOn == "":
		post.Touch(created)
	case ok:
		post.Touch(modified)
	default:
		logger.Warn("Unparseable modifiedOn, using createdOn",
			"source", source, "slug", post.Slug, "modifiedOn", r.ModifiedOn)
		post.Touch(created)
	}
	return post, nil
}

// validSlug reports whether s can be used as a single directory name under
// view/blog.
func validSlug(s string) bool {
	if s == "" || s == "." || s == ".." {
		return false
	}
	if strings.ContainsAny(s, `/\`) {
		return false
	}
	return path.Clean(s) == s
}
