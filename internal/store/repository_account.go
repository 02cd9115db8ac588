package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/threadboard/internal/logger"
	"github.com/MKhiriev/threadboard/models"
	"github.com/jackc/pgerrcode"
)

// accountRepository is the PostgreSQL-backed implementation of
// [AccountRepository] over the "accounts" table.
type accountRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAccount inserts a new account and returns the stored row.
//
// A unique violation is mapped by constraint name: the username key yields a
// *UsernameTakenError, the lower(email) index yields ErrEmailTaken.
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertAccountQuery(account)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("failed to build query")
		return models.Account{}, err
	}

	var created models.Account
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&created.ID,
		&created.Username,
		&created.Email,
		&created.PasswordHash,
		&created.Rank,
		&created.CreatedAt,
	)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Str("username", account.Username).Msg("failed to insert account")

		if pgErr := postgresError(err); pgErr != nil && pgErr.Code == pgerrcode.UniqueViolation {
			switch pgErr.ConstraintName {
			case accountsEmailKey:
				return models.Account{}, ErrEmailTaken
			default:
				return models.Account{}, &UsernameTakenError{Username: account.Username}
			}
		}
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *accountRepository) FindAccountByEmail(ctx context.Context, email string) (models.Account, error) {
	query, args, err := buildSelectAccountByEmailQuery(email)
	if err != nil {
		return models.Account{}, err
	}

	return r.findOne(ctx, "*accountRepository.FindAccountByEmail", query, args)
}

func (r *accountRepository) FindAccountByID(ctx context.Context, id int64) (models.Account, error) {
	query, args, err := buildSelectAccountByIDQuery(id)
	if err != nil {
		return models.Account{}, err
	}

	return r.findOne(ctx, "*accountRepository.FindAccountByID", query, args)
}

func (r *accountRepository) findOne(ctx context.Context, funcName, query string, args []any) (models.Account, error) {
	log := logger.FromContext(ctx)

	var found models.Account
	err := r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(
			&found.ID,
			&found.Username,
			&found.Email,
			&found.PasswordHash,
			&found.Rank,
			&found.CreatedAt,
		)
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		log.Debug().Str("func", funcName).Msg("account not found")
		return models.Account{}, ErrAccountNotFound
	case err != nil:
		log.Err(err).Str("func", funcName).Msg("failed to query account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}
