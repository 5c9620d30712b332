// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-rest-kit/internal/logger"
	"github.com/MKhiriev/go-rest-kit/models"
)

const articlesTable = "articles"

var (
	articleColumns = []string{"id", "author_id", "title", "body", "status", "created_at", "updated_at"}
	authorColumns  = []string{"user_id", "login", "name", "created_at"}
)

// articleRepository is the SQL implementation of [ArticleRepository].
// Reads join the author so that the "author" relation is always loaded.
type articleRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

// NewArticleRepository constructs an [ArticleRepository] backed by db.
func NewArticleRepository(db *DB, logger *logger.Logger) ArticleRepository {
	logger.Debug().Msg("creating article repository")
	return &articleRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// CreateArticle inserts the article and returns the stored row. The author
// relation is not loaded.
func (r *articleRepository) CreateArticle(ctx context.Context, article models.Article) (models.Article, error) {
	log := logger.FromContext(ctx)

	now := r.now()
	query, args, err := r.db.builder.
		Insert(articlesTable).
		Columns("author_id", "title", "body", "status", "created_at", "updated_at").
		Values(article.AuthorID, article.Title, article.Body, string(article.Status), now, now).
		Suffix("RETURNING " + joinColumns(articleColumns)).
		ToSql()
	if err != nil {
		return models.Article{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanArticle(r.db.QueryRowContext(ctx, query, args...), false)
	if err != nil {
		log.Err(err).Str("func", "*articleRepository.CreateArticle").Msg("error saving article")
		return models.Article{}, r.db.mapError(err)
	}

	return created, nil
}

// GetArticle loads one article with its author. [ErrNotFound] is returned
// when there is no such article.
func (r *articleRepository) GetArticle(ctx context.Context, id int64) (models.Article, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.selectWithAuthor().Where(sq.Eq{"a.id": id}).ToSql()
	if err != nil {
		return models.Article{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var article models.Article
	err = r.db.retry(ctx, func() error {
		var scanErr error
		article, scanErr = scanArticle(r.db.QueryRowContext(ctx, query, args...), true)
		return scanErr
	})
	if err != nil {
		mapped := r.db.mapError(err)
		if !errors.Is(mapped, ErrNotFound) {
			log.Err(err).Str("func", "*articleRepository.GetArticle").Msg("error loading article")
		}
		return models.Article{}, mapped
	}

	return article, nil
}

// ListArticles returns one page of articles ordered by id.
func (r *articleRepository) ListArticles(ctx context.Context, filter models.ArticleFilter, offset, limit int) ([]models.Article, error) {
	log := logger.FromContext(ctx)

	builder := r.selectWithAuthor().Where(articleFilter(filter)).OrderBy("a.id")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}
	if offset > 0 {
		builder = builder.Offset(uint64(offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var articles []models.Article
	err = r.db.retry(ctx, func() error {
		articles = articles[:0]

		rows, queryErr := r.db.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()

		for rows.Next() {
			article, scanErr := scanArticle(rows, true)
			if scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
			}
			articles = append(articles, article)
		}
		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "*articleRepository.ListArticles").Msg("error listing articles")
		return nil, r.db.mapError(err)
	}

	return articles, nil
}

// CountArticles returns the number of articles matching filter.
func (r *articleRepository) CountArticles(ctx context.Context, filter models.ArticleFilter) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("COUNT(*)").
		From(articlesTable + " a").
		Where(articleFilter(filter)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	err = r.db.retry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&count)
	})
	if err != nil {
		log.Err(err).Str("func", "*articleRepository.CountArticles").Msg("error counting articles")
		return 0, r.db.mapError(err)
	}

	return count, nil
}

// UpdateArticle stores the writable fields of article and bumps its
// updated_at. [ErrNotFound] is returned when the row is gone.
func (r *articleRepository) UpdateArticle(ctx context.Context, article models.Article) (models.Article, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update(articlesTable).
		Set("title", article.Title).
		Set("body", article.Body).
		Set("status", string(article.Status)).
		Set("updated_at", r.now()).
		Where(sq.Eq{"id": article.ID}).
		Suffix("RETURNING " + joinColumns(articleColumns)).
		ToSql()
	if err != nil {
		return models.Article{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanArticle(r.db.QueryRowContext(ctx, query, args...), false)
	if err != nil {
		mapped := r.db.mapError(err)
		if !errors.Is(mapped, ErrNotFound) {
			log.Err(err).Str("func", "*articleRepository.UpdateArticle").Msg("error updating article")
		}
		return models.Article{}, mapped
	}
	updated.Author = article.Author

	return updated, nil
}

// DeleteArticle removes the article. [ErrNotFound] is returned when no row
// was deleted.
func (r *articleRepository) DeleteArticle(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.Delete(articlesTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*articleRepository.DeleteArticle").Msg("error deleting article")
		return r.db.mapError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return r.db.mapError(err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *articleRepository) selectWithAuthor() sq.SelectBuilder {
	columns := append(prefixColumns("a", articleColumns), prefixColumns("u", authorColumns)...)
	return r.db.builder.
		Select(columns...).
		From(articlesTable + " a").
		Join(usersTable + " u ON u.user_id = a.author_id")
}

func articleFilter(filter models.ArticleFilter) sq.And {
	where := sq.And{}
	if filter.AuthorID != 0 {
		where = append(where, sq.Eq{"a.author_id": filter.AuthorID})
	}
	if filter.Status != "" {
		where = append(where, sq.Eq{"a.status": string(filter.Status)})
	}
	return where
}

func scanArticle(row rowScanner, withAuthor bool) (models.Article, error) {
	var (
		article models.Article
		status  string
	)
	dest := []any{&article.ID, &article.AuthorID, &article.Title, &article.Body, &status, timestamp{&article.CreatedAt}, timestamp{&article.UpdatedAt}}

	var author models.User
	if withAuthor {
		dest = append(dest, &author.UserID, &author.Login, &author.Name, timestamp{&author.CreatedAt})
	}

	if err := row.Scan(dest...); err != nil {
		return models.Article{}, err
	}

	article.Status = models.ArticleStatus(status)
	if withAuthor {
		article.Author = &author
	}
	return article, nil
}
