// Package testing provides shared fixtures for maskable tests.
package testing

import (
	"testing"

	"github.com/zoobzio/maskable"
)

// Article is a host with two maskable attributes declared by tags.
// Title is nullable; Body is a plain string.
type Article struct {
	ID     string  `json:"id" xml:"id" yaml:"id" msgpack:"id" bson:"id"`
	Author string  `json:"author" xml:"author" yaml:"author" msgpack:"author" bson:"author"`
	Slug   string  `json:"slug" xml:"slug" yaml:"slug" msgpack:"slug" bson:"slug"`
	Title  *string `json:"title" xml:"title,omitempty" yaml:"title" msgpack:"title" bson:"title" mask:"author,id"`
	Body   string  `json:"body" xml:"body" yaml:"body" msgpack:"body" bson:"body" mask:"author,byline=Byline,slug"`
}

// Byline resolves the byline token.
func (a *Article) Byline() string {
	return "by " + a.Author
}

// ArticleSchema builds the tag-declared schema for Article.
func ArticleSchema(tb testing.TB) *maskable.Schema[Article] {
	tb.Helper()
	schema, err := maskable.New[Article]()
	if err != nil {
		tb.Fatalf("maskable.New[Article]() error: %v", err)
	}
	return schema
}

// NewArticle returns an Article holding the given raw templates.
func NewArticle(title, body string) *Article {
	return &Article{
		ID:     "42",
		Author: "ada",
		Slug:   "engines",
		Title:  &title,
		Body:   body,
	}
}

// Deref returns the value of s, or "<nil>" when s is nil.
func Deref(s *string) string {
	if s == nil {
		return "<nil>"
	}
	return *s
}
