package store

import "github.com/MKhiriev/go-rest-kit/internal/logger"

type Storages struct {
	UserRepository    UserRepository
	ArticleRepository ArticleRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		ArticleRepository: NewArticleRepository(db, log),
	}
}
