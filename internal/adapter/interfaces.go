// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is a Go client of the REST kit articles API.
//
// [NewAPIClient] returns an [APIClient] backed by resty. Every response
// envelope is unwrapped: the payload is decoded into the caller's value and
// a non-zero envelope status comes back as a [*fault.Fault] carrying the
// same status, message and, for validation failures, the field errors.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-rest-kit/models"
)

// APIClient talks to the articles API over HTTP.
type APIClient interface {
	// SetToken stores the bearer token attached to every subsequent request.
	// Register and Login call it on success.
	SetToken(token string)

	// Token returns the stored bearer token, or "" before login.
	Token() string

	// Version returns the build information of the server.
	Version(ctx context.Context) (models.AppBuildInfo, error)

	// Register creates an account and logs in with it.
	Register(ctx context.Context, creds models.Credentials) (models.User, error)

	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	// Me returns the user the stored token belongs to.
	Me(ctx context.Context) (models.User, error)

	ListArticles(ctx context.Context, query ArticleQuery) (ArticlePage, error)
	GetArticle(ctx context.Context, id int64) (models.Article, error)
	CreateArticle(ctx context.Context, in models.ArticleInput) (models.Article, error)
	UpdateArticle(ctx context.Context, id int64, in models.ArticleInput) (models.Article, error)
	DeleteArticle(ctx context.Context, id int64) error
}

// ArticleQuery narrows an article listing. Zero fields are not sent.
type ArticleQuery struct {
	AuthorID int64
	Status   models.ArticleStatus

	// Page is 1-based.
	Page    int
	PerPage int
}

// ArticlePage is one page of an article listing.
type ArticlePage struct {
	Items []models.Article
	Meta  models.PageInfo
}
