package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-rest-kit/internal/config"
	"github.com/MKhiriev/go-rest-kit/internal/logger"
	"github.com/MKhiriev/go-rest-kit/models"
)

func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()

	db, err := NewDB(context.Background(), config.DB{DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.Equal(t, DialectSQLite, db.Dialect())
	require.NoError(t, db.Migrate())

	return NewStorages(db, logger.Nop())
}

func TestSQLite_UsersAndArticles(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStorages(t)

	// ── users ──
	john, err := s.UserRepository.CreateUser(ctx, models.User{Login: "john", PasswordHash: "hash", Name: "John"})
	require.NoError(t, err)
	assert.NotZero(t, john.UserID)
	assert.False(t, john.CreatedAt.IsZero())

	_, err = s.UserRepository.CreateUser(ctx, models.User{Login: "john", PasswordHash: "other"})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	found, err := s.UserRepository.FindUserByLogin(ctx, "john")
	require.NoError(t, err)
	assert.Equal(t, john.UserID, found.UserID)

	_, err = s.UserRepository.FindUserByID(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)

	// ── articles ──
	for i, status := range []models.ArticleStatus{models.ArticleDraft, models.ArticlePublished, models.ArticlePublished} {
		_, err := s.ArticleRepository.CreateArticle(ctx, models.Article{
			AuthorID: john.UserID,
			Title:    "title",
			Body:     "body",
			Status:   status,
		})
		require.NoError(t, err, i)
	}

	count, err := s.ArticleRepository.CountArticles(ctx, models.ArticleFilter{Status: models.ArticlePublished})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	page, err := s.ArticleRepository.ListArticles(ctx, models.ArticleFilter{AuthorID: john.UserID}, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, models.ArticlePublished, page[0].Status)
	require.NotNil(t, page[0].Author)
	assert.Equal(t, "john", page[0].Author.Login)

	article, err := s.ArticleRepository.GetArticle(ctx, page[0].ID)
	require.NoError(t, err)
	article.Title = "changed"

	updated, err := s.ArticleRepository.UpdateArticle(ctx, article)
	require.NoError(t, err)
	assert.Equal(t, "changed", updated.Title)
	assert.False(t, updated.UpdatedAt.Before(article.UpdatedAt))

	require.NoError(t, s.ArticleRepository.DeleteArticle(ctx, article.ID))
	assert.ErrorIs(t, s.ArticleRepository.DeleteArticle(ctx, article.ID), ErrNotFound)

	_, err = s.ArticleRepository.GetArticle(ctx, article.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()
	assert.Equal(t, NonRetryable, c.Classify(nil))
	assert.Equal(t, NonRetryable, c.Classify(assert.AnError))
}
