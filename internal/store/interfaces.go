package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-rest-kit/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

type ArticleRepository interface {
	CreateArticle(ctx context.Context, article models.Article) (models.Article, error)
	GetArticle(ctx context.Context, id int64) (models.Article, error)
	ListArticles(ctx context.Context, filter models.ArticleFilter, offset, limit int) ([]models.Article, error)
	CountArticles(ctx context.Context, filter models.ArticleFilter) (int, error)
	UpdateArticle(ctx context.Context, article models.Article) (models.Article, error)
	DeleteArticle(ctx context.Context, id int64) error
}

// ErrorClassificator decides whether a failed statement may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
