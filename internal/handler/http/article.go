// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"path"
	"strconv"

	"github.com/MKhiriev/go-rest-kit/internal/logger"
	"github.com/MKhiriev/go-rest-kit/internal/response"
	"github.com/MKhiriev/go-rest-kit/internal/validators"
	"github.com/MKhiriev/go-rest-kit/models"
)

func (h *Handler) listArticles(ac *ActionContext) (any, error) {
	if err := ac.CheckAccess(nil); err != nil {
		return nil, err
	}

	query := ac.Request.URL.Query()
	var filter models.ArticleFilter
	if author := query.Get("author"); author != "" {
		authorID, err := strconv.ParseInt(author, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: author: %w", ErrInvalidQueryParameter, err)
		}
		filter.AuthorID = authorID
	}
	if status := query.Get("status"); status != "" {
		filter.Status = models.ArticleStatus(status)
	}

	page := response.PageRequestFromRequest(ac.Request, h.api.DefaultPageSize, h.api.MaxPageSize)
	return h.services.ArticleService.ListArticles(ac.Context(), filter, page)
}

func (h *Handler) viewArticle(ac *ActionContext) (any, error) {
	article, err := h.findArticle(ac)
	if err != nil {
		return nil, err
	}
	if err = ac.CheckAccess(article); err != nil {
		return nil, err
	}
	return article, nil
}

func (h *Handler) createArticle(ac *ActionContext) (any, error) {
	if err := ac.CheckAccess(nil); err != nil {
		return nil, err
	}

	var input models.ArticleInput
	if err := ac.Bind(&input); err != nil {
		return nil, err
	}

	article, err := h.services.ArticleService.CreateArticle(ac.Context(), ac.Identity().UserID, input)
	if errors.Is(err, validators.ErrValidationFailed) && article != nil {
		return validationFailed(article), nil
	}
	if err != nil {
		return nil, err
	}

	ac.SetStatus(http.StatusCreated)
	ac.Header().Set("Location", path.Join(ac.Request.URL.Path, strconv.FormatInt(article.ID, 10)))
	return article, nil
}

func (h *Handler) updateArticle(ac *ActionContext) (any, error) {
	article, err := h.findArticle(ac)
	if err != nil {
		return nil, err
	}
	if err = ac.CheckAccess(article); err != nil {
		return nil, err
	}

	var input models.ArticleInput
	if err = ac.Bind(&input); err != nil {
		return nil, err
	}

	updated, err := h.services.ArticleService.UpdateArticle(ac.Context(), article, input)
	if errors.Is(err, validators.ErrValidationFailed) && updated != nil {
		return validationFailed(updated), nil
	}
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (h *Handler) deleteArticle(ac *ActionContext) (any, error) {
	article, err := h.findArticle(ac)
	if err != nil {
		return nil, err
	}
	if err = ac.CheckAccess(article); err != nil {
		return nil, err
	}

	if err = h.services.ArticleService.DeleteArticle(ac.Context(), article.ID); err != nil {
		logger.FromContext(ac.Context()).Err(err).Int64("id", article.ID).Msg("article deletion failed")
		return nil, err
	}

	ac.SetStatus(http.StatusNoContent)
	return nil, nil
}

func (h *Handler) findArticle(ac *ActionContext) (*models.Article, error) {
	id, err := strconv.ParseInt(ac.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return nil, ErrInvalidArticleID
	}
	return h.services.ArticleService.GetArticle(ac.Context(), id)
}
