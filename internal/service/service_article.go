// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-rest-kit/internal/fault"
	"github.com/MKhiriev/go-rest-kit/internal/logger"
	"github.com/MKhiriev/go-rest-kit/internal/response"
	"github.com/MKhiriev/go-rest-kit/internal/store"
	"github.com/MKhiriev/go-rest-kit/internal/utils"
	"github.com/MKhiriev/go-rest-kit/internal/validators"
	"github.com/MKhiriev/go-rest-kit/models"
)

// Actions of the article resource understood by CheckAccess.
const (
	ActionIndex  = "index"
	ActionView   = "view"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

type articleService struct {
	articleRepository store.ArticleRepository
	validator         validators.Validator
	logger            *logger.Logger
}

func NewArticleService(articleRepository store.ArticleRepository, validator validators.Validator, logger *logger.Logger) ArticleService {
	return &articleService{
		articleRepository: articleRepository,
		validator:         validator,
		logger:            logger,
	}
}

// ListArticles returns one page of articles. Callers other than the author
// named in filter only see published articles.
func (s *articleService) ListArticles(ctx context.Context, filter models.ArticleFilter, page response.PageRequest) (*response.Collection, error) {
	log := logger.FromContext(ctx)

	userID, _ := utils.GetUserIDFromContext(ctx)
	if filter.AuthorID == 0 || filter.AuthorID != userID {
		filter.Status = models.ArticlePublished
	}

	total, err := s.articleRepository.CountArticles(ctx, filter)
	if err != nil {
		log.Err(err).Msg("counting articles failed")
		return nil, fmt.Errorf("counting articles failed: %w", err)
	}

	pager := page.Paginator(total)

	articles, err := s.articleRepository.ListArticles(ctx, filter, pager.Offset(), pager.Limit())
	if err != nil {
		log.Err(err).Msg("listing articles failed")
		return nil, fmt.Errorf("listing articles failed: %w", err)
	}

	items := make([]*models.Article, len(articles))
	keys := make([]string, len(articles))
	for i := range articles {
		items[i] = &articles[i]
		keys[i] = strconv.FormatInt(articles[i].ID, 10)
	}

	collection := response.NewCollection(items, pager)
	collection.ItemKeys = keys
	return collection, nil
}

// GetArticle loads the article with its author.
func (s *articleService) GetArticle(ctx context.Context, id int64) (*models.Article, error) {
	article, err := s.articleRepository.GetArticle(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading article %d failed: %w", id, err)
	}
	return &article, nil
}

// CreateArticle validates and stores a new draft (unless input says
// otherwise). On validation failure the unsaved article carrying its field
// errors is returned along with the error.
func (s *articleService) CreateArticle(ctx context.Context, authorID int64, input models.ArticleInput) (*models.Article, error) {
	article := &models.Article{AuthorID: authorID, Status: models.ArticleDraft}
	input.Apply(article)

	if err := s.validator.Validate(ctx, article); err != nil {
		return article, err
	}

	created, err := s.articleRepository.CreateArticle(ctx, *article)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("author", authorID).Msg("creating article failed")
		return nil, fmt.Errorf("creating article failed: %w", err)
	}
	return &created, nil
}

// UpdateArticle applies input to article, validates and stores it.
func (s *articleService) UpdateArticle(ctx context.Context, article *models.Article, input models.ArticleInput) (*models.Article, error) {
	input.Apply(article)

	if err := s.validator.Validate(ctx, article); err != nil {
		return article, err
	}

	updated, err := s.articleRepository.UpdateArticle(ctx, *article)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", article.ID).Msg("updating article failed")
		return nil, fmt.Errorf("updating article failed: %w", err)
	}
	return &updated, nil
}

func (s *articleService) DeleteArticle(ctx context.Context, id int64) error {
	if err := s.articleRepository.DeleteArticle(ctx, id); err != nil {
		return fmt.Errorf("deleting article %d failed: %w", id, err)
	}
	return nil
}

// CheckAccess enforces ownership. Published articles are visible to
// everyone; drafts, updates and deletes are reserved for the author.
// resource wins over id; id is only used to load the article when no
// resource is given.
func (s *articleService) CheckAccess(ctx context.Context, action, id string, resource any, _ map[string]string) error {
	identity, _ := utils.IdentityFromContext(ctx)

	switch action {
	case ActionIndex:
		return nil
	case ActionCreate:
		if identity.IsGuest() {
			return fault.Unauthorized("Login Required")
		}
		return nil
	}

	article, err := s.resolve(ctx, id, resource)
	if err != nil {
		return err
	}
	if article == nil {
		return nil
	}

	if action == ActionView && article.Status == models.ArticlePublished {
		return nil
	}
	if identity.IsGuest() || article.AuthorID != identity.UserID {
		return ErrNotArticleOwner
	}
	return nil
}

func (s *articleService) resolve(ctx context.Context, id string, resource any) (*models.Article, error) {
	switch r := resource.(type) {
	case *models.Article:
		return r, nil
	case models.Article:
		return &r, nil
	case nil:
	default:
		return nil, fmt.Errorf("unexpected resource %T", resource)
	}

	if id == "" {
		return nil, nil
	}

	articleID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, fault.NotFound("").WithErr(fmt.Errorf("%w: %q", ErrInvalidID, id))
	}

	article, err := s.articleRepository.GetArticle(ctx, articleID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fault.NotFound("").WithErr(err)
	}
	if err != nil {
		return nil, fault.Internal(err)
	}
	return &article, nil
}
