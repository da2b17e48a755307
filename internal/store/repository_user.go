package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table. It works on PostgreSQL and SQLite alike.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(r.db.statementBuilder(), user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.User
	row := r.db.querier(ctx).QueryRowContext(ctx, query, args...)
	if err = scanUser(row, &created); err != nil {
		if r.db.classify(err) == UniqueViolation {
			log.Debug().Str("func", "*userRepository.CreateUser").Msg("email already exists")
			return models.User{}, ErrEmailAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// FindUserByEmail retrieves the user record whose email matches exactly.
//
// Error handling:
//   - no matching row → [ErrNoUserWasFound].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserByEmailQuery(r.db.statementBuilder(), email)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.User
	row := r.db.querier(ctx).QueryRowContext(ctx, query, args...)
	if err = scanUser(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error selecting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner, user *models.User) error {
	return row.Scan(&user.UserID, &user.Name, &user.Email, &user.PasswordHash, scannableTime{&user.CreatedAt})
}
