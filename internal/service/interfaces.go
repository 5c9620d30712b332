package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-rest-kit/internal/response"
	"github.com/MKhiriev/go-rest-kit/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// AuthenticateBearer and AuthenticateSession resolve the request
	// principal for the access gate.
	AuthenticateBearer(ctx context.Context, token string) (models.Identity, error)
	AuthenticateSession(r *http.Request) (models.Identity, error)

	SessionCookie(token models.Token) *http.Cookie
	ExpiredSessionCookie() *http.Cookie
}

type ArticleService interface {
	ListArticles(ctx context.Context, filter models.ArticleFilter, page response.PageRequest) (*response.Collection, error)
	GetArticle(ctx context.Context, id int64) (*models.Article, error)

	// CreateArticle and UpdateArticle return the article together with a
	// validation error so that the caller can render its field errors.
	CreateArticle(ctx context.Context, authorID int64, input models.ArticleInput) (*models.Article, error)
	UpdateArticle(ctx context.Context, article *models.Article, input models.ArticleInput) (*models.Article, error)
	DeleteArticle(ctx context.Context, id int64) error

	// CheckAccess enforces article ownership; see access.AccessChecker.
	CheckAccess(ctx context.Context, action, id string, resource any, params map[string]string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
