package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-rest-kit/internal/logger"
	"github.com/MKhiriev/go-rest-kit/internal/serializer"
	"github.com/MKhiriev/go-rest-kit/internal/utils"
	"github.com/MKhiriev/go-rest-kit/models"
	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 15 * time.Second

// Options configures [NewAPIClient].
type Options struct {
	// BaseURL is the server address; a missing scheme means http.
	BaseURL string
	Timeout time.Duration

	// CollectionEnvelope and MetaEnvelope must match the server settings.
	// Unwrapped collections are read with their pagination headers.
	CollectionEnvelope string
	MetaEnvelope       string
}

type apiClient struct {
	client *resty.Client

	collectionKey string
	metaKey       string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewAPIClient builds an [APIClient] for opts.BaseURL.
func NewAPIClient(opts Options, logger *logger.Logger) (APIClient, error) {
	baseURL, err := normalizeBaseURL(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.CollectionEnvelope == "" {
		opts.CollectionEnvelope = "items"
	}
	if opts.MetaEnvelope == "" {
		opts.MetaEnvelope = "_meta"
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(opts.Timeout).
		SetHeader("Accept", "application/json")

	return &apiClient{
		client:        client,
		collectionKey: opts.CollectionEnvelope,
		metaKey:       opts.MetaEnvelope,
		logger:        logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", fmt.Errorf("address must include a host")
	}
	return strings.TrimRight(u.String(), "/"), nil
}

func (c *apiClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

func (c *apiClient) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *apiClient) request(ctx context.Context) *resty.Request {
	req := c.client.R().SetContext(ctx)
	if token := c.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func (c *apiClient) Version(ctx context.Context) (models.AppBuildInfo, error) {
	var info models.AppBuildInfo

	resp, err := c.request(ctx).Get("/api/version")
	if err != nil {
		return info, fmt.Errorf("version request: %w", err)
	}
	return info, decode(resp, &info)
}

// authResult is the payload of the register and login endpoints.
type authResult struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	User      models.User `json:"user"`
}

func (c *apiClient) Register(ctx context.Context, creds models.Credentials) (models.User, error) {
	return c.authenticate(ctx, "/api/auth/register", creds)
}

func (c *apiClient) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	return c.authenticate(ctx, "/api/auth/login", creds)
}

func (c *apiClient) authenticate(ctx context.Context, path string, creds models.Credentials) (models.User, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post(path)
	if err != nil {
		return models.User{}, fmt.Errorf("%s request: %w", path, err)
	}

	var result authResult
	if err = decode(resp, &result); err != nil {
		return models.User{}, err
	}

	token := result.Token
	if token == "" {
		if token, err = utils.ParseBearerToken(resp.Header().Get("Authorization")); err != nil {
			return models.User{}, fmt.Errorf("%w: no token in response", ErrUnexpectedResponse)
		}
	}
	c.SetToken(token)

	c.logger.Debug().Str("login", result.User.Login).Time("expires_at", result.ExpiresAt).Msg("authenticated")
	return result.User, nil
}

func (c *apiClient) Me(ctx context.Context) (models.User, error) {
	var user models.User

	resp, err := c.request(ctx).Get("/api/auth/me")
	if err != nil {
		return user, fmt.Errorf("me request: %w", err)
	}
	return user, decode(resp, &user)
}

func (c *apiClient) ListArticles(ctx context.Context, query ArticleQuery) (ArticlePage, error) {
	params := map[string]string{}
	if query.AuthorID > 0 {
		params["author"] = strconv.FormatInt(query.AuthorID, 10)
	}
	if query.Status != "" {
		params["status"] = string(query.Status)
	}
	if query.Page > 0 {
		params["page"] = strconv.Itoa(query.Page)
	}
	if query.PerPage > 0 {
		params["per-page"] = strconv.Itoa(query.PerPage)
	}

	resp, err := c.request(ctx).SetQueryParams(params).Get("/api/articles")
	if err != nil {
		return ArticlePage{}, fmt.Errorf("list articles request: %w", err)
	}

	data, err := unwrap(resp)
	if err != nil {
		return ArticlePage{}, err
	}
	return c.decodePage(data, resp)
}

// decodePage reads either the enveloped form {items, _meta} or a bare list
// with the pagination headers.
func (c *apiClient) decodePage(data json.RawMessage, resp *resty.Response) (ArticlePage, error) {
	var page ArticlePage
	if isNull(data) {
		return page, nil
	}

	if bytes.HasPrefix(data, []byte("[")) {
		if err := json.Unmarshal(data, &page.Items); err != nil {
			return page, fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
		}
		page.Meta = pageInfoFromHeaders(resp)
		return page, nil
	}

	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return page, fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
	}
	if items, ok := wrapped[c.collectionKey]; ok && !isNull(items) {
		if err := json.Unmarshal(items, &page.Items); err != nil {
			return page, fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
		}
	}
	if meta, ok := wrapped[c.metaKey]; ok && !isNull(meta) {
		if err := json.Unmarshal(meta, &page.Meta); err != nil {
			return page, fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
		}
	}
	return page, nil
}

func pageInfoFromHeaders(resp *resty.Response) models.PageInfo {
	atoi := func(name string) int {
		n, _ := strconv.Atoi(resp.Header().Get(name))
		return n
	}
	return models.PageInfo{
		TotalCount:  atoi(serializer.HeaderTotalCount),
		PageCount:   atoi(serializer.HeaderPageCount),
		CurrentPage: atoi(serializer.HeaderCurrentPage),
		PerPage:     atoi(serializer.HeaderPerPage),
	}
}

func (c *apiClient) GetArticle(ctx context.Context, id int64) (models.Article, error) {
	var article models.Article

	resp, err := c.request(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Get("/api/articles/{id}")
	if err != nil {
		return article, fmt.Errorf("get article request: %w", err)
	}
	return article, decode(resp, &article)
}

func (c *apiClient) CreateArticle(ctx context.Context, in models.ArticleInput) (models.Article, error) {
	var article models.Article

	resp, err := c.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(in).
		Post("/api/articles")
	if err != nil {
		return article, fmt.Errorf("create article request: %w", err)
	}
	return article, decode(resp, &article)
}

func (c *apiClient) UpdateArticle(ctx context.Context, id int64, in models.ArticleInput) (models.Article, error) {
	var article models.Article

	resp, err := c.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(in).
		Patch("/api/articles/{id}")
	if err != nil {
		return article, fmt.Errorf("update article request: %w", err)
	}
	return article, decode(resp, &article)
}

func (c *apiClient) DeleteArticle(ctx context.Context, id int64) error {
	resp, err := c.request(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/api/articles/{id}")
	if err != nil {
		return fmt.Errorf("delete article request: %w", err)
	}
	return decode(resp, nil)
}
