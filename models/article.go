package models

import "time"

// ArticleStatus is the publication state of an article.
type ArticleStatus string

const (
	ArticleDraft     ArticleStatus = "draft"
	ArticlePublished ArticleStatus = "published"
)

// Article is the demo resource exposed by the REST API.
//
// It satisfies the serializer capabilities: Fields/ToMap render the
// resource, RelatedRecords reports the eagerly loaded author and the
// embedded ValidationErrors reports field errors.
type Article struct {
	ValidationErrors `json:"-"`

	ID        int64         `json:"id"`
	AuthorID  int64         `json:"authorId"`
	Title     string        `json:"title" validate:"required,max=255"`
	Body      string        `json:"body" validate:"required"`
	Status    ArticleStatus `json:"status" validate:"required,oneof=draft published"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`

	// Author is set only when the author has been loaded together with the
	// article.
	Author *User `json:"-"`
}

var articleFields = []string{"id", "authorId", "title", "body", "status", "createdAt", "updatedAt"}

// Fields returns the default set of fields exposed for an article.
func (a *Article) Fields() []string {
	return articleFields
}

// RelatedRecords returns the relations loaded together with the article.
func (a *Article) RelatedRecords() map[string]any {
	if a.Author == nil {
		return map[string]any{}
	}
	return map[string]any{"author": a.Author}
}

// ToMap renders the article into a field map.
func (a *Article) ToMap(fields, expand []string, recursive bool) map[string]any {
	all := map[string]any{
		"id":        a.ID,
		"authorId":  a.AuthorID,
		"title":     a.Title,
		"body":      a.Body,
		"status":    a.Status,
		"createdAt": a.CreatedAt,
		"updatedAt": a.UpdatedAt,
	}

	extra := map[string]any{}
	if a.Author != nil {
		extra["author"] = a.Author
	}

	return pick(all, articleFields, extra, fields, expand, recursive)
}

// ArticleInput is the writable subset of an article accepted from clients.
type ArticleInput struct {
	Title  *string        `json:"title"`
	Body   *string        `json:"body"`
	Status *ArticleStatus `json:"status"`
}

// Apply copies every non-nil field of in onto a.
func (in ArticleInput) Apply(a *Article) {
	if in.Title != nil {
		a.Title = *in.Title
	}
	if in.Body != nil {
		a.Body = *in.Body
	}
	if in.Status != nil {
		a.Status = *in.Status
	}
}

// ArticleFilter narrows article listings.
type ArticleFilter struct {
	AuthorID int64
	Status   ArticleStatus
}
