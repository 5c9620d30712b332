package store

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-rest-kit/internal/logger"
	"github.com/MKhiriev/go-rest-kit/models"
)

const usersTable = "users"

var userColumns = []string{"user_id", "login", "password_hash", "name", "created_at"}

// userRepository is the SQL implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with the
// server-assigned fields (UserID, CreatedAt) populated from the RETURNING
// clause.
//
// Error handling:
//   - unique violation on login → [ErrAlreadyExists].
//   - any other driver-level error → [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(usersTable).
		Columns("login", "password_hash", "name").
		Values(user.Login, user.PasswordHash, user.Name).
		Suffix("RETURNING " + joinColumns(userColumns)).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error saving user")
		return models.User{}, r.db.mapError(err)
	}

	return created, nil
}

// FindUserByLogin retrieves the user whose login matches. [ErrNotFound] is
// returned when there is none.
func (r *userRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByLogin", sq.Eq{"login": login})
}

// FindUserByID retrieves the user by primary key. [ErrNotFound] is
// returned when there is none.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", sq.Eq{"user_id": userID})
}

func (r *userRepository) findOne(ctx context.Context, fn string, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(userColumns...).
		From(usersTable).
		Where(where).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = r.db.retry(ctx, func() error {
		var scanErr error
		user, scanErr = scanUser(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		mapped := r.db.mapError(err)
		if !errors.Is(mapped, ErrNotFound) {
			log.Err(err).Str("func", fn).Msg("error finding user")
		}
		return models.User{}, mapped
	}

	return user, nil
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(&user.UserID, &user.Login, &user.PasswordHash, &user.Name, timestamp{&user.CreatedAt})
	return user, err
}
